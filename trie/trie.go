package trie

import "sort"

type trieNode struct {
	children map[rune]*trieNode
	isWord   bool
}

func newTrieNode() *trieNode {
	return &trieNode{
		children: make(map[rune]*trieNode),
	}
}

// Trie is a rune-keyed prefix tree over words. The zero value is not usable; create
// one with New.
type Trie struct {
	root *trieNode
	size int
}

func New() Trie {
	return Trie{
		root: newTrieNode(),
	}
}

// Insert adds a word. Inserting a word twice is a no-op; the empty string is a valid
// word and matches every prefix search.
func (me *Trie) Insert(word string) {
	curr := me.root
	for _, r := range word {
		child, ok := curr.children[r]
		if !ok {
			child = newTrieNode()
			curr.children[r] = child
		}
		curr = child
	}
	if !curr.isWord {
		curr.isWord = true
		me.size++
	}
}

func (me *Trie) InsertAll(words ...string) {
	for _, word := range words {
		me.Insert(word)
	}
}

// Contains reports whether the exact word was inserted.
func (me *Trie) Contains(word string) bool {
	node, ok := me.walk(word)
	return ok && node.isWord
}

// ContainsPrefix reports whether any inserted word starts with the prefix.
func (me *Trie) ContainsPrefix(prefix string) bool {
	_, ok := me.walk(prefix)
	return ok
}

// FindAllByPrefix returns every inserted word starting with the prefix, in
// lexicographic order. An unknown prefix yields an empty result.
func (me *Trie) FindAllByPrefix(prefix string) []string {
	start, ok := me.walk(prefix)
	if !ok {
		return nil
	}

	type frame struct {
		node *trieNode
		word string
	}

	var out []string
	stack := []frame{{node: start, word: prefix}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.node.isWord {
			out = append(out, top.word)
		}
		for r, child := range top.node.children {
			stack = append(stack, frame{node: child, word: top.word + string(r)})
		}
	}

	// Map iteration order is unspecified, so sort for a deterministic result.
	sort.Strings(out)
	return out
}

// Size returns the number of distinct words inserted.
func (me *Trie) Size() int {
	return me.size
}

func (me *Trie) walk(prefix string) (*trieNode, bool) {
	curr := me.root
	for _, r := range prefix {
		child, ok := curr.children[r]
		if !ok {
			return nil, false
		}
		curr = child
	}
	return curr, true
}
