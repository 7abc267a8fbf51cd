package testing_util

import (
	"os"
	"path/filepath"
	"testing"
)

func MkdirTemp(t *testing.T, prefix string) (path string, cleanup func()) {
	out, err := os.MkdirTemp(os.TempDir(), prefix)
	if err != nil {
		t.Fatalf("failed to create temporary directory: %v", err)
	}

	if err := os.Chmod(out, 0o777); err != nil {
		t.Fatalf("failed to make temporary directory accessible: %s", err)
	}

	return out, func() {
		os.RemoveAll(out)
	}
}

func WriteTempFile(t *testing.T, dir, name, contents string) (path string) {
	path = filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o666); err != nil {
		t.Fatalf("failed to write temporary file: %v", err)
	}
	return path
}
