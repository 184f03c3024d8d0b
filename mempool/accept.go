// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

// Accept validates tx against the pool's membership, expiration, and
// conflict rules and, on success, inserts it into all four indexes. It
// returns false without mutating any state on any rejection — see
// spec.md §4.3 for the full decision procedure.
func (mp *Pool) Accept(tx Transaction) bool {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	hash := tx.Hash()

	// 1. Already present — reject silently.
	if mp.store.exists(hash) {
		return false
	}

	// 2. Expired relative to the observed chain tip.
	if mp.head != nil {
		verifier := mp.chain.Verifier()
		if verifier != nil && verifier.IsExpiredSequence(tx.ExpirationSequence(), mp.head.Sequence) {
			log.Debugf("Rejecting transaction %v: expired sequence %d "+
				"(head %d)", hash, tx.ExpirationSequence(), mp.head.Sequence)
			return false
		}
	}

	// 3. Walk every spend, evicting strictly-lower-fee conflicts and
	// rejecting on an equal-or-higher-fee conflict.
	var evict []Transaction
	for _, spend := range tx.Spends() {
		ownerHash, ok := mp.nullifiers.lookup(spend.Nullifier)
		if !ok {
			continue
		}

		owner, ok := mp.store.get(ownerHash)
		if !ok {
			// Stale mapping: the nullifier entry outlived its
			// owning transaction. Treat it as free — see
			// spec.md §4.3.
			continue
		}

		if tx.Fee() > owner.Fee() {
			evict = append(evict, owner)
			continue
		}

		log.Tracef("Rejecting transaction %v: conflicts with %v at "+
			"equal or greater fee", hash, ownerHash)
		return false
	}

	for _, victim := range evict {
		mp.deleteTransaction(victim)
	}

	// 4. Insert.
	return mp.addTransaction(tx)
}
