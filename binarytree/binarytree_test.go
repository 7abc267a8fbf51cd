package binarytree

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testing_util "github.com/navijation/njstructs/util/testing"
)

func TestGenerateSymmetrical(t *testing.T) {
	for _, tc := range []struct {
		name   string
		levels int

		expectedPrint string
	}{
		{
			name:          "zero levels",
			levels:        0,
			expectedPrint: "  0\n",
		},
		{
			name:          "one level",
			levels:        1,
			expectedPrint: "  1\n",
		},
		{
			name:          "two levels",
			levels:        2,
			expectedPrint: "    3\n  1\n    2\n",
		},
		{
			name:   "three levels",
			levels: 3,
			expectedPrint: "      7\n" +
				"    3\n" +
				"      6\n" +
				"  1\n" +
				"      5\n" +
				"    2\n" +
				"      4\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			root := GenerateSymmetrical(tc.levels)

			var sb strings.Builder
			Fprint(&sb, root)
			assert.Equal(t, tc.expectedPrint, sb.String())
		})
	}
}

func TestInvert(t *testing.T) {
	root := GenerateSymmetrical(3)

	Invert(root)

	require.NotNil(t, root.Left)
	require.NotNil(t, root.Right)
	assert.Equal(t, 3, root.Left.Value)
	assert.Equal(t, 2, root.Right.Value)
	assert.Equal(t, 7, root.Left.Left.Value)
	assert.Equal(t, 6, root.Left.Right.Value)
	assert.Equal(t, 5, root.Right.Left.Value)
	assert.Equal(t, 4, root.Right.Right.Value)

	// Inverting twice restores the original shape.
	Invert(root)
	assert.Equal(t, 2, root.Left.Value)
	assert.Equal(t, 3, root.Right.Value)
}

func TestInvert_nilRoot(t *testing.T) {
	assert.NotPanics(t, func() {
		Invert(nil)
	})
}

func TestWriteDot(t *testing.T) {
	root := GenerateSymmetrical(2)

	var sb strings.Builder
	require.NoError(t, WriteDot(&sb, root))

	expected := "strict digraph {\n" +
		"\tnode [fontname=Arial,fontsize=12];\n" +
		"\t\"1\" [label=\"1\"];\n" +
		"\t\"1\" -> \"2\";\n" +
		"\t\"1\" -> \"3\";\n" +
		"\t\"2\" [label=\"2\"];\n" +
		"\t\"3\" [label=\"3\"];\n" +
		"}\n"
	assert.Equal(t, expected, sb.String())
}

func TestWriteDot_toFile(t *testing.T) {
	dir, cleanup := testing_util.MkdirTemp(t, "binarytree_dot")
	defer cleanup()

	path := filepath.Join(dir, "tree.dot")
	file, err := os.Create(path)
	require.NoError(t, err)

	require.NoError(t, WriteDot(file, GenerateSymmetrical(3)))
	require.NoError(t, file.Close())

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "strict digraph {")
	assert.Contains(t, string(contents), "\"1\" -> \"3\";")
}
