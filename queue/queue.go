package queue

import "github.com/navijation/njstructs/util"

// Queue is a FIFO queue built from two stacks. Enqueues push onto the inbox; dequeues
// pop from the outbox, refilling it by reversing the inbox only when it runs dry, which
// keeps both operations amortized O(1).
type Queue[T any] struct {
	inbox  []T
	outbox []T
}

func New[T any]() Queue[T] {
	return Queue[T]{}
}

func (me *Queue[T]) Enqueue(value T) {
	me.inbox = append(me.inbox, value)
}

func (me *Queue[T]) Dequeue() util.Optional[T] {
	me.fillOutbox()
	if len(me.outbox) == 0 {
		return util.None[T]()
	}

	out := me.outbox[len(me.outbox)-1]
	me.outbox = me.outbox[:len(me.outbox)-1]
	return util.Some(out)
}

func (me *Queue[T]) Peek() util.Optional[T] {
	if len(me.outbox) > 0 {
		return util.Some(me.outbox[len(me.outbox)-1])
	}
	if len(me.inbox) > 0 {
		return util.Some(me.inbox[0])
	}
	return util.None[T]()
}

func (me *Queue[T]) Len() int {
	return len(me.inbox) + len(me.outbox)
}

func (me *Queue[T]) IsEmpty() bool {
	return len(me.inbox) == 0 && len(me.outbox) == 0
}

func (me *Queue[T]) fillOutbox() {
	if len(me.outbox) > 0 {
		return
	}
	for i := len(me.inbox) - 1; i >= 0; i-- {
		me.outbox = append(me.outbox, me.inbox[i])
	}
	me.inbox = me.inbox[:0]
}
