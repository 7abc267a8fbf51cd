package linkedlist

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var ErrEmptySource = errors.New("cannot build a linked list from an empty source")

type node[T any] struct {
	value T
	next  *node[T]
}

// SinglyLinkedList is a head-anchored singly linked list. Length is tracked
// explicitly so positional operations can reject out-of-range indexes without
// walking the chain.
type SinglyLinkedList[T any] struct {
	head *node[T]
	len  int
}

func New[T any](head T) SinglyLinkedList[T] {
	return SinglyLinkedList[T]{
		head: &node[T]{value: head},
		len:  1,
	}
}

// FromSlice builds a list from the slice in order. An empty slice is rejected with
// ErrEmptySource, since a list always has a head.
func FromSlice[T any](values []T) (SinglyLinkedList[T], error) {
	if len(values) == 0 {
		return SinglyLinkedList[T]{}, ErrEmptySource
	}

	out := New(values[0])
	for _, v := range values[1:] {
		out.InsertBack(v)
	}
	return out, nil
}

func (me *SinglyLinkedList[T]) Head() (T, bool) {
	if me.head == nil {
		var zero T
		return zero, false
	}
	return me.head.value, true
}

func (me *SinglyLinkedList[T]) Tail() (T, bool) {
	if me.head == nil {
		var zero T
		return zero, false
	}

	curr := me.head
	for curr.next != nil {
		curr = curr.next
	}
	return curr.value, true
}

func (me *SinglyLinkedList[T]) InsertFront(value T) {
	me.head = &node[T]{value: value, next: me.head}
	me.len++
}

func (me *SinglyLinkedList[T]) InsertBack(value T) {
	if me.head == nil {
		me.head = &node[T]{value: value}
		me.len++
		return
	}

	curr := me.head
	for curr.next != nil {
		curr = curr.next
	}
	curr.next = &node[T]{value: value}
	me.len++
}

// PopHead removes and returns the head; the old head's successor becomes the new head.
func (me *SinglyLinkedList[T]) PopHead() (T, bool) {
	return me.Remove(0)
}

// PopTail removes and returns the tail.
func (me *SinglyLinkedList[T]) PopTail() (T, bool) {
	return me.Remove(me.len - 1)
}

// Remove deletes and returns the element at a zero-based index. Out-of-range indexes
// return false and leave the list unchanged.
func (me *SinglyLinkedList[T]) Remove(index int) (T, bool) {
	var zero T
	if index < 0 || index >= me.len {
		return zero, false
	}

	curr := &me.head
	for range index {
		curr = &(*curr).next
	}

	removed := *curr
	*curr = removed.next
	me.len--
	return removed.value, true
}

// At returns the element at a zero-based index without removing it.
func (me *SinglyLinkedList[T]) At(index int) (T, bool) {
	var zero T
	if index < 0 || index >= me.len {
		return zero, false
	}

	curr := me.head
	for range index {
		curr = curr.next
	}
	return curr.value, true
}

func (me *SinglyLinkedList[T]) Len() int {
	return me.len
}

func (me *SinglyLinkedList[T]) IsEmpty() bool {
	return me.head == nil
}

// All iterates the list from head to tail.
func (me *SinglyLinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for curr := me.head; curr != nil; curr = curr.next {
			if !yield(curr.value) {
				return
			}
		}
	}
}

func (me *SinglyLinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("LinkedList { ")
	for curr := me.head; curr != nil; curr = curr.next {
		fmt.Fprintf(&sb, "%v", curr.value)
		if curr.next != nil {
			sb.WriteString(" -> ")
		}
	}
	sb.WriteString(" }")
	return sb.String()
}
