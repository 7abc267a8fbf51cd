package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testing_util "github.com/navijation/njstructs/util/testing"
)

func TestFromFile(t *testing.T) {
	dir, cleanup := testing_util.MkdirTemp(t, "trie_words")
	defer cleanup()

	path := testing_util.WriteTempFile(
		t, dir, "words.txt",
		"astronaut\nastronomy\n\n  astrophysics  \nlantern\n",
	)

	tr, err := FromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 4, tr.Size())
	assert.Equal(
		t,
		[]string{"astronaut", "astronomy", "astrophysics"},
		tr.FindAllByPrefix("ast"),
	)
}

func TestFromFile_missingFile(t *testing.T) {
	_, err := FromFile("/nonexistent/words.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open word list")
}
