package trie

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// FromFile builds a trie from a word-list file, one word per line. Blank lines and
// surrounding whitespace are skipped.
func FromFile(path string) (Trie, error) {
	file, err := os.Open(path)
	if err != nil {
		return Trie{}, errors.Wrapf(err, "failed to open word list %q", path)
	}
	defer file.Close()

	out := New()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		out.Insert(word)
	}
	if err := scanner.Err(); err != nil {
		return Trie{}, errors.Wrapf(err, "failed to read word list %q", path)
	}

	return out, nil
}
