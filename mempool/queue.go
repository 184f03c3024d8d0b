// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"container/heap"

	"github.com/cryptoppp/ironfish/chainhash"
)

// indexedQueue is a generic priority queue built on container/heap, extended
// with a key→index map so entries can be removed by key in O(log n) instead
// of the O(n) scan a plain heap would require. less(a, b) reports whether a
// has strictly higher priority than b; keyOf extracts the stable identity
// used for removal.
type indexedQueue[T any] struct {
	impl *heapSlice[T]
}

// newIndexedQueue creates an empty indexedQueue using the given ordering and
// key extractor.
func newIndexedQueue[T any](less func(a, b T) bool, keyOf func(T) chainhash.Hash) *indexedQueue[T] {
	return &indexedQueue[T]{
		impl: &heapSlice[T]{
			less:  less,
			keyOf: keyOf,
			index: make(map[chainhash.Hash]int),
		},
	}
}

// add inserts entry into the queue. The caller must ensure no entry with the
// same key is already present.
func (q *indexedQueue[T]) add(entry T) {
	heap.Push(q.impl, entry)
}

// peek returns the maximum-priority entry without removing it.
func (q *indexedQueue[T]) peek() (T, bool) {
	if len(q.impl.items) == 0 {
		var zero T
		return zero, false
	}
	return q.impl.items[0], true
}

// poll removes and returns the maximum-priority entry.
func (q *indexedQueue[T]) poll() (T, bool) {
	if len(q.impl.items) == 0 {
		var zero T
		return zero, false
	}
	return heap.Pop(q.impl).(T), true
}

// remove deletes the entry with the given key, if present, and reports
// whether it was found.
func (q *indexedQueue[T]) remove(key chainhash.Hash) bool {
	i, ok := q.impl.index[key]
	if !ok {
		return false
	}
	heap.Remove(q.impl, i)
	return true
}

// size returns the number of entries in the queue.
func (q *indexedQueue[T]) size() int {
	return len(q.impl.items)
}

// clone returns an independent copy of the queue so callers can drain it
// (e.g. for ordered iteration) without disturbing the live index.
func (q *indexedQueue[T]) clone() *indexedQueue[T] {
	items := make([]T, len(q.impl.items))
	copy(items, q.impl.items)
	index := make(map[chainhash.Hash]int, len(q.impl.index))
	for k, v := range q.impl.index {
		index[k] = v
	}
	return &indexedQueue[T]{
		impl: &heapSlice[T]{
			items: items,
			less:  q.impl.less,
			keyOf: q.impl.keyOf,
			index: index,
		},
	}
}

// heapSlice implements heap.Interface over a slice of T, keeping an
// auxiliary key→index map current on every Swap so indexedQueue can remove
// by key without a linear scan.
type heapSlice[T any] struct {
	items []T
	less  func(a, b T) bool
	keyOf func(T) chainhash.Hash
	index map[chainhash.Hash]int
}

// has reports whether key currently identifies an entry in the heap.
func (h *heapSlice[T]) has(key chainhash.Hash) bool {
	_, ok := h.index[key]
	return ok
}

func (h *heapSlice[T]) Len() int { return len(h.items) }

func (h *heapSlice[T]) Less(i, j int) bool {
	return h.less(h.items[i], h.items[j])
}

func (h *heapSlice[T]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.index[h.keyOf(h.items[i])] = i
	h.index[h.keyOf(h.items[j])] = j
}

func (h *heapSlice[T]) Push(x any) {
	entry := x.(T)
	h.items = append(h.items, entry)
	h.index[h.keyOf(entry)] = len(h.items) - 1
}

func (h *heapSlice[T]) Pop() any {
	n := len(h.items) - 1
	entry := h.items[n]
	h.items = h.items[:n]
	delete(h.index, h.keyOf(entry))
	return entry
}

var _ heap.Interface = (*heapSlice[int])(nil)
