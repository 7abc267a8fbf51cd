package priorityqueue

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type task struct {
	name     string
	priority int
}

func byPriority(a, b task) int {
	return cmp.Compare(a.priority, b.priority)
}

func TestQueue_dequeueOrder(t *testing.T) {
	q := New(byPriority)
	for _, tk := range []task{
		{name: "compact", priority: 50},
		{name: "flush", priority: 80},
		{name: "gc", priority: 30},
		{name: "checkpoint", priority: 90},
		{name: "merge", priority: 60},
		{name: "index", priority: 40},
		{name: "scan", priority: 20},
	} {
		q.Enqueue(tk)
	}
	require.Equal(t, 7, q.Size())

	front, ok := q.Front().Unpack()
	require.True(t, ok)
	assert.Equal(t, "checkpoint", front.name)

	back, ok := q.Back().Unpack()
	require.True(t, ok)
	assert.Equal(t, "scan", back.name)

	var order []string
	for {
		tk, ok := q.Dequeue().Unpack()
		if !ok {
			break
		}
		order = append(order, tk.name)
	}
	assert.Equal(
		t,
		[]string{"checkpoint", "flush", "merge", "compact", "index", "gc", "scan"},
		order,
	)
	assert.True(t, q.IsEmpty())
	assert.False(t, q.Dequeue().IsSome())
}

func TestQueue_extractIf(t *testing.T) {
	q := New(cmp.Compare[int], 50, 80, 30, 90, 60, 40, 20)

	removed := q.ExtractIf(func(v int) bool { return v != 20 })

	assert.ElementsMatch(t, []int{50, 80, 30, 90, 60, 40}, removed)
	assert.Equal(t, []int{20}, q.ToSorted())
	assert.Equal(t, 1, q.Size())
}

func TestQueue_extractIfMatchesNothing(t *testing.T) {
	q := New(cmp.Compare[int], 3, 1, 2)

	removed := q.ExtractIf(func(int) bool { return false })

	assert.Empty(t, removed)
	assert.Equal(t, []int{3, 2, 1}, q.ToSorted())
}

func TestQueue_anyAndEvery(t *testing.T) {
	q := New(cmp.Compare[int], 50, 80, 30, 90, 60, 40, 20)

	assert.True(t, q.Any(func(v int) bool { return v > 50 }))
	assert.False(t, q.Any(func(v int) bool { return v > 100 }))
	assert.True(t, q.Every(func(v int) bool { return v >= 20 }))
	assert.False(t, q.Every(func(v int) bool { return v < 90 }))

	// Queries must not disturb the queue.
	assert.Equal(t, 7, q.Size())
	assert.Equal(t, []int{90, 80, 60, 50, 40, 30, 20}, q.ToSorted())
}

func TestQueue_anyAndEveryOnEmpty(t *testing.T) {
	q := New(cmp.Compare[int])

	assert.False(t, q.Any(func(int) bool { return true }))
	assert.True(t, q.Every(func(int) bool { return false }))
}

func TestQueue_minComparator(t *testing.T) {
	q := New(func(a, b int) int { return cmp.Compare(b, a) }, 50, 80, 30, 90, 60, 40, 20)

	front, _ := q.Front().Unpack()
	assert.Equal(t, 20, front)
	back, _ := q.Back().Unpack()
	assert.Equal(t, 90, back)
	assert.Equal(t, []int{20, 30, 40, 50, 60, 80, 90}, q.ToSorted())
}

func TestQueue_pushPopAliases(t *testing.T) {
	q := New(cmp.Compare[int])
	q.Push(2)
	q.Push(5)
	q.Push(1)

	value, ok := q.Pop().Unpack()
	require.True(t, ok)
	assert.Equal(t, 5, value)
	assert.Equal(t, 2, q.Size())
}
