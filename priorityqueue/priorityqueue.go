package priorityqueue

import (
	"iter"

	"github.com/navijation/njstructs/heap"
	"github.com/navijation/njstructs/util"
)

// Queue is a priority queue over exactly one heap. Dequeue order is highest priority
// first under the comparator; see heap.Comparator for the ranking convention.
type Queue[T any] struct {
	heap heap.Heap[T]
}

func New[T any](compare heap.Comparator[T], values ...T) Queue[T] {
	return Queue[T]{
		heap: heap.New(compare, values...),
	}
}

func (me *Queue[T]) Enqueue(value T) {
	me.heap.Insert(value)
}

// Push is an alias for Enqueue.
func (me *Queue[T]) Push(value T) {
	me.Enqueue(value)
}

// Dequeue removes and returns the highest-priority element, or none when empty.
func (me *Queue[T]) Dequeue() util.Optional[T] {
	return me.heap.ExtractRoot()
}

// Pop is an alias for Dequeue.
func (me *Queue[T]) Pop() util.Optional[T] {
	return me.Dequeue()
}

// Front returns the highest-priority element without removing it.
func (me *Queue[T]) Front() util.Optional[T] {
	return me.heap.Root()
}

// Back returns the lowest-priority element without removing it.
func (me *Queue[T]) Back() util.Optional[T] {
	return me.heap.Leaf()
}

// ExtractIf removes and returns every element for which `match` is true. The relative
// order of returned elements is unspecified. Retained elements are reinserted, so the
// queue is a valid heap when this returns.
func (me *Queue[T]) ExtractIf(match func(T) bool) []T {
	var removed, retained []T

	for {
		popped, ok := me.Dequeue().Unpack()
		if !ok {
			break
		}
		if match(popped) {
			removed = append(removed, popped)
		} else {
			retained = append(retained, popped)
		}
	}

	for _, value := range retained {
		me.Enqueue(value)
	}

	return removed
}

// Any reports whether any element matches the predicate. The scan is read-only and
// runs in backing order.
func (me *Queue[T]) Any(predicate func(T) bool) bool {
	for value := range me.All() {
		if predicate(value) {
			return true
		}
	}
	return false
}

// Every reports whether all elements match the predicate. Vacuously true when empty.
func (me *Queue[T]) Every(predicate func(T) bool) bool {
	for value := range me.All() {
		if !predicate(value) {
			return false
		}
	}
	return true
}

// ToSorted returns the elements sorted from highest priority to lowest, leaving the
// queue untouched.
func (me *Queue[T]) ToSorted() []T {
	return me.heap.ToSorted()
}

func (me *Queue[T]) Size() int {
	return me.heap.Size()
}

func (me *Queue[T]) IsEmpty() bool {
	return me.heap.IsEmpty()
}

func (me *Queue[T]) Clear() {
	me.heap.Clear()
}

// All iterates elements in current backing order, not priority order.
func (me *Queue[T]) All() iter.Seq[T] {
	return me.heap.All()
}
