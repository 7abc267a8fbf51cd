package binarytree

import (
	"fmt"
	"io"

	"github.com/navijation/njstructs/queue"
)

// WriteDot outputs the tree structure in Graphviz DOT format, for inspection and
// debugging. Node IDs are allocated in breadth order so the rendered graph reads
// top-down.
func WriteDot(w io.Writer, root *Node) error {
	if _, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"); err != nil {
		return err
	}
	if root == nil {
		_, err := io.WriteString(w, "}\n")
		return err
	}

	ids := map[*Node]int{root: 1}
	nextID := 1
	alloc := func(node *Node) int {
		if id, ok := ids[node]; ok {
			return id
		}
		nextID++
		ids[node] = nextID
		return nextID
	}

	frontier := queue.New[*Node]()
	frontier.Enqueue(root)

	for {
		node, ok := frontier.Dequeue().Unpack()
		if !ok {
			break
		}

		id := alloc(node)
		if _, err := fmt.Fprintf(w, "\t\"%d\" [label=\"%d\"];\n", id, node.Value); err != nil {
			return err
		}

		for _, child := range []*Node{node.Left, node.Right} {
			if child == nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "\t\"%d\" -> \"%d\";\n", id, alloc(child)); err != nil {
				return err
			}
			frontier.Enqueue(child)
		}
	}

	_, err := io.WriteString(w, "}\n")
	return err
}
