package pqueue

import "container/heap"

// Queue is a min-priority work-queue with decrease-key semantics.
// The zero value is not usable; construct with New. A Queue is not safe for
// concurrent use.
type Queue[K comparable] struct {
	h    entryHeap[K]
	live map[K]slot
	seq  uint64
}

// New returns an empty Queue configured by opts.
func New[K comparable](opts ...Option[K]) *Queue[K] {
	q := &Queue[K]{live: make(map[K]slot)}
	for _, opt := range opts {
		opt(q)
	}

	return q
}

// PushOrImprove inserts key with priority if it is not tracked, or lowers its
// priority if the tracked one is numerically larger. An equal or better tracked
// priority makes the call a no-op. Reports whether the queue changed.
// An improvement counts as a fresh push for tie-breaking: among equal priorities
// the key ranks by the order of its latest successful push, not its first.
func (q *Queue[K]) PushOrImprove(key K, priority int) bool {
	if cur, ok := q.live[key]; ok && cur.priority <= priority {
		return false
	}
	q.seq++
	q.live[key] = slot{priority: priority, seq: q.seq}
	heap.Push(&q.h, entry[K]{key: key, priority: priority, seq: q.seq})

	return true
}

// PopMin removes and returns the key with the smallest live priority along
// with that priority. Stale heap entries met on the way are discarded.
// Returns ErrEmptyQueue if nothing is tracked.
func (q *Queue[K]) PopMin() (K, int, error) {
	if !q.dropStale() {
		var zero K
		return zero, 0, ErrEmptyQueue
	}
	e := heap.Pop(&q.h).(entry[K])
	delete(q.live, e.key)

	return e.key, e.priority, nil
}

// Peek returns the key PopMin would return without removing it.
func (q *Queue[K]) Peek() (K, int, error) {
	if !q.dropStale() {
		var zero K
		return zero, 0, ErrEmptyQueue
	}
	e := q.h.items[0]

	return e.key, e.priority, nil
}

// dropStale pops dead entries off the top of the heap and reports whether a
// live entry remains on top.
func (q *Queue[K]) dropStale() bool {
	for q.h.Len() > 0 {
		top := q.h.items[0]
		if cur, ok := q.live[top.key]; ok && cur.seq == top.seq {
			return true
		}
		heap.Pop(&q.h)
	}
	return false
}

// Contains reports whether key is currently tracked with a live priority.
func (q *Queue[K]) Contains(key K) bool {
	_, ok := q.live[key]
	return ok
}

// Priority returns the live priority of key and whether it is tracked.
func (q *Queue[K]) Priority(key K) (int, bool) {
	cur, ok := q.live[key]
	return cur.priority, ok
}

// Len returns the number of tracked keys.
func (q *Queue[K]) Len() int { return len(q.live) }

// Empty reports whether no key is tracked.
func (q *Queue[K]) Empty() bool { return len(q.live) == 0 }

// Stale returns the number of superseded entries still held by the heap.
func (q *Queue[K]) Stale() int { return q.h.Len() - len(q.live) }
