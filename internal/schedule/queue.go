// Package schedule runs deferred work from the caller's own loop. Tasks are
// keyed: scheduling a key that is already pending replaces the old task.
package schedule

import (
	"container/heap"
	"time"
)

type task[K comparable] struct {
	key   K
	at    time.Time
	fn    func()
	seq   uint64
	index int
}

type taskHeap[K comparable] []*task[K]

func (h taskHeap[K]) Len() int { return len(h) }
func (h taskHeap[K]) Less(i, j int) bool {
	if h[i].at.Equal(h[j].at) {
		return h[i].seq < h[j].seq
	}
	return h[i].at.Before(h[j].at)
}
func (h taskHeap[K]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *taskHeap[K]) Push(x any) {
	t := x.(*task[K])
	t.index = len(*h)
	*h = append(*h, t)
}
func (h *taskHeap[K]) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Queue is not safe for concurrent use; it belongs to the loop that
// flushes it.
type Queue[K comparable] struct {
	tasks taskHeap[K]
	byKey map[K]*task[K]
	seq   uint64
}

func NewQueue[K comparable]() *Queue[K] {
	return &Queue[K]{byKey: map[K]*task[K]{}}
}

// Schedule runs fn at the first Flush at or after at. A pending task with
// the same key is dropped without running; Schedule reports whether that
// happened.
func (q *Queue[K]) Schedule(key K, at time.Time, fn func()) bool {
	replaced := q.Cancel(key)
	q.seq++
	t := &task[K]{key: key, at: at, fn: fn, seq: q.seq}
	heap.Push(&q.tasks, t)
	q.byKey[key] = t
	return replaced
}

// Cancel drops the pending task for key, if any.
func (q *Queue[K]) Cancel(key K) bool {
	t, ok := q.byKey[key]
	if !ok {
		return false
	}
	heap.Remove(&q.tasks, t.index)
	delete(q.byKey, key)
	return true
}

func (q *Queue[K]) Pending(key K) bool {
	_, ok := q.byKey[key]
	return ok
}

func (q *Queue[K]) Len() int {
	return len(q.tasks)
}

// Next is the deadline of the earliest pending task.
func (q *Queue[K]) Next() (time.Time, bool) {
	if len(q.tasks) == 0 {
		return time.Time{}, false
	}
	return q.tasks[0].at, true
}

// Flush runs every task due at now, earliest first, and returns how many
// ran. Tasks may schedule more work; anything they add that is already due
// runs in the same call.
func (q *Queue[K]) Flush(now time.Time) int {
	n := 0
	for len(q.tasks) > 0 && !now.Before(q.tasks[0].at) {
		t := heap.Pop(&q.tasks).(*task[K])
		delete(q.byKey, t.key)
		t.fn()
		n++
	}
	return n
}

// Drain runs every pending task regardless of its deadline.
func (q *Queue[K]) Drain() int {
	n := 0
	for len(q.tasks) > 0 {
		t := heap.Pop(&q.tasks).(*task[K])
		delete(q.byKey, t.key)
		t.fn()
		n++
	}
	return n
}
