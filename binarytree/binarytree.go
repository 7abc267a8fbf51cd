package binarytree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/navijation/njstructs/queue"
)

type Node struct {
	Value int
	Left  *Node
	Right *Node
}

// GenerateSymmetrical builds a perfect binary tree of the given depth, assigning
// values in breadth order starting at 1. Zero or negative levels yield a single
// zero-valued node. No recursion is used.
func GenerateSymmetrical(levels int) *Node {
	if levels <= 0 {
		return &Node{}
	}

	nodeCount := 1
	root := &Node{Value: 1}
	currLevel := []*Node{root}

	for range levels - 1 {
		var nextLevel []*Node
		for _, node := range currLevel {
			nodeCount++
			node.Left = &Node{Value: nodeCount}
			nodeCount++
			node.Right = &Node{Value: nodeCount}
			nextLevel = append(nextLevel, node.Left, node.Right)
		}
		currLevel = nextLevel
	}

	return root
}

type nodeDepth struct {
	node  *Node
	depth int
}

// Fprint writes the tree sideways, one node per line, rightmost subtree first and
// indentation proportional to depth. The traversal is reverse in-order with an
// explicit stack; no recursion is used.
func Fprint(w io.Writer, root *Node) {
	if root == nil {
		return
	}

	var stack []nodeDepth
	current := &nodeDepth{node: root, depth: 1}

	for current != nil || len(stack) > 0 {
		for current != nil {
			var next *nodeDepth
			if right := current.node.Right; right != nil {
				next = &nodeDepth{node: right, depth: current.depth + 1}
			}
			stack = append(stack, *current)
			current = next
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fmt.Fprintf(w, "%s%d\n", strings.Repeat(" ", top.depth*2), top.node.Value)
		if left := top.node.Left; left != nil {
			current = &nodeDepth{node: left, depth: top.depth + 1}
		}
	}
}

// Print writes the tree to stdout; see Fprint.
func Print(root *Node) {
	Fprint(os.Stdout, root)
}

// Invert swaps the left and right children of every node in place, walking the tree
// breadth-first. No recursion is used.
func Invert(root *Node) {
	if root == nil {
		return
	}

	frontier := queue.New[*Node]()
	frontier.Enqueue(root)

	for {
		node, ok := frontier.Dequeue().Unpack()
		if !ok {
			return
		}

		node.Left, node.Right = node.Right, node.Left

		if node.Left != nil {
			frontier.Enqueue(node.Left)
		}
		if node.Right != nil {
			frontier.Enqueue(node.Right)
		}
	}
}
