// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"iter"
)

// OrderedTransactions returns a lazy, non-restartable sequence of the
// pool's transactions in fee-descending order, ties broken by
// hash-descending. It clones the fee queue at call time, so the snapshot
// reflects membership at the moment of the call: entries deleted afterward
// are observed as skips, entries added afterward are not observed. See
// spec.md §4.5.
func (mp *Pool) OrderedTransactions() iter.Seq[Transaction] {
	mp.mu.Lock()
	snapshot := mp.feeQueue.clone()
	mp.mu.Unlock()

	return func(yield func(Transaction) bool) {
		for {
			entry, ok := snapshot.poll()
			if !ok {
				return
			}

			mp.mu.Lock()
			tx, present := mp.store.get(entry.hash)
			mp.mu.Unlock()

			if !present {
				// Concurrent delete removed this entry after
				// the snapshot was taken; skip and keep
				// draining.
				continue
			}

			if !yield(tx) {
				return
			}
		}
	}
}
