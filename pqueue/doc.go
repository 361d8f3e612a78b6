// Package pqueue implements a decrease-key capable min-priority work-queue.
//
// Overview:
//
//   - Queue[K] tracks at most one live priority per key K.
//   - PushOrImprove inserts an untracked key or lowers the priority of a tracked
//     one; equal or worse priorities are ignored.
//   - PopMin removes the key with the smallest live priority. Ties are broken by
//     insertion order (earliest push wins) unless WithTieBreak supplies a key order.
//
// Implementation:
//
//   - A binary min-heap (container/heap) of (priority, seq, key) entries plus a side
//     map key → live (priority, seq).
//   - Decrease-key is "lazy": the improved entry is pushed again and the old one is
//     left in the heap. PopMin discards any entry whose seq no longer matches the
//     side map, so a stale entry is never returned ahead of, or instead of, the live one.
//
// Complexity:
//
//   - PushOrImprove: O(log N), N = heap entries including stale ones.
//   - PopMin:        amortised O(log N).
//   - Contains, Priority, Len: O(1) expected.
//
// Errors:
//
//   - ErrEmptyQueue: PopMin or Peek on a queue with no live entries.
package pqueue
