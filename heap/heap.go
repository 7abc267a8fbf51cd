package heap

import (
	"iter"
	"slices"

	"github.com/navijation/njstructs/util"
)

// Comparator defines a total order over T. A positive result means `a` outranks `b`,
// zero means the two are equal, and a negative result means `b` outranks `a`. The heap
// arranges itself as a max-heap under the comparator; negate the comparator to get
// min-heap behavior.
type Comparator[T any] func(a, b T) int

// Heap is an array-backed binary heap whose root is the highest-ranked element under
// the comparator. The backing slice is owned exclusively by the heap; all operations
// are total and return absent values instead of failing on an empty heap.
type Heap[T any] struct {
	compare Comparator[T]
	nodes   []T
}

// New builds a heap over `values`, fixing them into heap order in O(n).
func New[T any](compare Comparator[T], values ...T) Heap[T] {
	out := Heap[T]{
		compare: compare,
		nodes:   values,
	}
	if len(out.nodes) > 0 {
		out.Fix()
	}
	return out
}

func (me *Heap[T]) Size() int {
	return len(me.nodes)
}

func (me *Heap[T]) IsEmpty() bool {
	return len(me.nodes) == 0
}

func (me *Heap[T]) Insert(value T) {
	me.nodes = append(me.nodes, value)
	me.heapifyUp(len(me.nodes) - 1)
}

// Root returns the highest-priority element without removing it.
func (me *Heap[T]) Root() util.Optional[T] {
	if len(me.nodes) == 0 {
		return util.None[T]()
	}
	return util.Some(me.nodes[0])
}

// Leaf returns the lowest-priority element without removing it. The leaf band
// [len/2, len) is scanned on every call; the lowest-ranked element always lives there
// because any internal node outranks its subtree.
func (me *Heap[T]) Leaf() util.Optional[T] {
	if len(me.nodes) == 0 {
		return util.None[T]()
	}

	leaf := me.nodes[len(me.nodes)/2]
	for _, value := range me.nodes[len(me.nodes)/2+1:] {
		if me.compare(leaf, value) > 0 {
			leaf = value
		}
	}
	return util.Some(leaf)
}

// ExtractRoot removes and returns the highest-priority element. Extracting from an
// empty heap is a no-op returning none.
func (me *Heap[T]) ExtractRoot() util.Optional[T] {
	if len(me.nodes) == 0 {
		return util.None[T]()
	}

	last := len(me.nodes) - 1
	me.swap(0, last)
	out := me.nodes[last]
	me.nodes = me.nodes[:last]
	me.heapifyDown(0)

	return util.Some(out)
}

// Sort rearranges the backing slice in place into ascending priority by index, so the
// root ends up at the last index. The backing order is no longer a valid heap
// afterwards until Fix is called. Calling Sort again on already-sorted data leaves it
// unchanged, since the invariant is re-established before the selection pass.
func (me *Heap[T]) Sort() {
	if len(me.nodes) < 2 {
		return
	}

	me.Fix()
	for end := len(me.nodes) - 1; end > 0; end-- {
		me.swap(0, end)
		me.heapifyDownBounded(0, end)
	}
}

// ToSorted returns the elements sorted from highest priority to lowest. The sort runs
// on an internal clone, so the heap remains valid.
func (me *Heap[T]) ToSorted() []T {
	clone := Heap[T]{
		compare: me.compare,
		nodes:   slices.Clone(me.nodes),
	}
	clone.Sort()
	slices.Reverse(clone.nodes)
	return clone.nodes
}

// IsValid recursively verifies that no child outranks its parent. It is a test
// oracle, not production control flow.
func (me *Heap[T]) IsValid() bool {
	return me.isValidFrom(0)
}

// Fix re-establishes the heap invariant from arbitrary backing order via bottom-up
// sift-down, O(n) overall.
func (me *Heap[T]) Fix() {
	for i := len(me.nodes)/2 - 1; i >= 0; i-- {
		me.heapifyDown(i)
	}
}

// ForEachMut applies `f` to every element in place, then fixes the heap once. The
// backing order is unspecified while the callback runs.
func (me *Heap[T]) ForEachMut(f func(*T)) {
	for i := range me.nodes {
		f(&me.nodes[i])
	}
	me.Fix()
}

func (me *Heap[T]) Clear() {
	me.nodes = nil
}

// All iterates elements in current backing order, not sorted order. Mutating the heap
// during iteration is undefined.
func (me *Heap[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range me.nodes {
			if !yield(value) {
				return
			}
		}
	}
}

func (me *Heap[T]) isValidFrom(parent int) bool {
	for _, child := range []int{2*parent + 1, 2*parent + 2} {
		if child >= len(me.nodes) {
			continue
		}
		if me.outranks(child, parent) {
			return false
		}
		if !me.isValidFrom(child) {
			return false
		}
	}
	return true
}

func (me *Heap[T]) outranks(i, j int) bool {
	return me.compare(me.nodes[i], me.nodes[j]) > 0
}

func (me *Heap[T]) swap(i, j int) {
	me.nodes[i], me.nodes[j] = me.nodes[j], me.nodes[i]
}

func (me *Heap[T]) heapifyUp(start int) {
	child := start
	for child > 0 {
		parent := (child - 1) / 2
		if !me.outranks(child, parent) {
			return
		}
		me.swap(child, parent)
		child = parent
	}
}

func (me *Heap[T]) heapifyDown(start int) {
	me.heapifyDownBounded(start, len(me.nodes))
}

// heapifyDownBounded sifts down within nodes[:end] only, which lets Sort shrink the
// active region while sorted elements accumulate at the tail.
func (me *Heap[T]) heapifyDownBounded(start, end int) {
	parent := start
	for {
		child := 2*parent + 1
		if child >= end {
			return
		}
		// Ties break toward the left child; the right one is picked only when it
		// strictly outranks the left.
		if right := child + 1; right < end && me.outranks(right, child) {
			child = right
		}
		if !me.outranks(child, parent) {
			return
		}
		me.swap(parent, child)
		parent = child
	}
}
