package pqueue

import "errors"

// ErrEmptyQueue is returned by PopMin and Peek when no live entry remains.
var ErrEmptyQueue = errors.New("pqueue: queue is empty")

// Option configures a Queue at construction time.
type Option[K comparable] func(*Queue[K])

// WithTieBreak orders equal-priority keys by less instead of insertion order.
// Keys that less reports as equivalent still fall back to insertion order.
func WithTieBreak[K comparable](less func(a, b K) bool) Option[K] {
	return func(q *Queue[K]) {
		q.h.tie = less
	}
}

// WithCapacity pre-sizes the heap and the side map for n keys.
func WithCapacity[K comparable](n int) Option[K] {
	return func(q *Queue[K]) {
		if n > 0 {
			q.h.items = make([]entry[K], 0, n)
			q.live = make(map[K]slot, n)
		}
	}
}

// entry is one heap element. seq identifies the push that created it.
type entry[K comparable] struct {
	key      K
	priority int
	seq      uint64
}

// slot is the live state of a tracked key.
type slot struct {
	priority int
	seq      uint64
}

// entryHeap is a min-heap of entries ordered by priority, then tie, then seq.
type entryHeap[K comparable] struct {
	items []entry[K]
	tie   func(a, b K) bool
}

// Len returns the number of entries, stale ones included.
func (h *entryHeap[K]) Len() int { return len(h.items) }

// Less defines the comparison: smaller priority first, then tie order, then earlier seq.
func (h *entryHeap[K]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if h.tie != nil {
		if h.tie(a.key, b.key) {
			return true
		}
		if h.tie(b.key, a.key) {
			return false
		}
	}
	return a.seq < b.seq
}

// Swap swaps two entries.
func (h *entryHeap[K]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push appends x, which must be an entry[K]. Called by heap.Push.
func (h *entryHeap[K]) Push(x any) { h.items = append(h.items, x.(entry[K])) }

// Pop removes and returns the last entry. Called by heap.Pop.
func (h *entryHeap[K]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]

	return item
}
