package util

import "iter"

func SeqOf[T any](items ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

func SeqAt[T any](seq iter.Seq[T], idx int) (out T, exists bool) {
	var i int
	for item := range seq {
		if i == idx {
			return item, true
		}
		i++
	}
	return out, false
}

func CollectSeq[T any](seq iter.Seq[T]) (out []T) {
	for item := range seq {
		out = append(out, item)
	}
	return out
}
