// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

// handleNotification is the callback registered with the Chain collaborator
// at construction (spec.md §6: "subscribed at construction"). It dispatches
// on notification type to the two chain-event handlers.
func (mp *Pool) handleNotification(n *Notification) {
	switch n.Type {
	case NTBlockConnected:
		mp.onConnect(n.Data)
	case NTBlockDisconnected:
		if err := mp.onDisconnect(n.Data); err != nil {
			log.Warnf("Error reinserting disconnected block: %v", err)
		}
	}
}

// onConnect reacts to a newly connected block: it evicts every transaction
// the block confirmed, sweeps transactions that have expired against the
// new tip, and advances the observed head. See spec.md §4.4.
func (mp *Pool) onConnect(block Block) {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	confirmed := 0
	for _, tx := range block.Transactions() {
		if mp.deleteTransaction(tx) {
			confirmed++
		}
	}

	mp.sweepExpired(block.Header().Sequence)

	mp.head = block.Header()

	log.Debugf("Block connected at height %d: %d confirmed, pool size %d",
		mp.head.Sequence, confirmed, mp.store.size())
}

// sweepExpired removes every transaction whose expiration sequence has
// passed relative to headSequence. The peeked expirationQueue entry is
// always removed before the loop re-peeks, whether or not the owning
// transaction is still present — spec.md's Open Question flags the
// opposite choice (continue without removing) as a latent livelock, and
// this sweep must not replicate it.
func (mp *Pool) sweepExpired(headSequence uint32) {
	verifier := mp.chain.Verifier()
	if verifier == nil {
		return
	}

	for {
		entry, ok := mp.expirationQueue.peek()
		if !ok {
			return
		}
		if !verifier.IsExpiredSequence(entry.expirationSequence, headSequence) {
			return
		}

		mp.expirationQueue.remove(entry.hash)

		tx, ok := mp.store.get(entry.hash)
		if !ok {
			// Stale entry: the transaction was already removed
			// by some other path. The removal above still made
			// progress, so the loop can't livelock on it.
			continue
		}

		mp.deleteTransaction(tx)
	}
}

// onDisconnect reacts to a disconnected block: every non-miner's-fee
// transaction it contained is reinserted (best-effort; conflicts are
// impossible since the block was previously valid), and the observed head
// walks back to the block's parent. See spec.md §4.4.
func (mp *Pool) onDisconnect(block Block) error {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	reinserted := 0
	for _, tx := range block.Transactions() {
		if tx.IsMinersFee() {
			continue
		}
		if mp.addTransaction(tx) {
			reinserted++
		}
	}

	prevHash := block.Header().PreviousBlockHash
	prevHeader, err := mp.chain.GetHeader(prevHash)
	if err != nil {
		return err
	}

	// prevHeader may be nil if the parent is unknown to the chain; the
	// pool documents this as a soft error and simply loses its observed
	// head rather than treating it as fatal — see spec.md's Open
	// Question on this case.
	mp.head = prevHeader

	log.Debugf("Block disconnected: %d reinserted, pool size %d",
		reinserted, mp.store.size())

	return nil
}
