// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"github.com/cryptoppp/ironfish/chainhash"
)

// mempoolEntry is a fee-index row: the queue orders these by (fee desc,
// hash desc).
type mempoolEntry struct {
	fee  int64
	hash chainhash.Hash
}

// expirationEntry is an expiration-index row: the queue orders these by
// expirationSequence ascending, so the soonest-to-expire transaction is
// always at the front.
type expirationEntry struct {
	expirationSequence uint32
	hash               chainhash.Hash
}

// txStore is the canonical hash→transaction map, plus the running byte
// total spec.md's sizeBytes reports for the transaction side of the pool.
type txStore struct {
	transactions map[chainhash.Hash]Transaction
	bytes        int
}

func newTxStore() *txStore {
	return &txStore{
		transactions: make(map[chainhash.Hash]Transaction),
	}
}

func (s *txStore) get(hash chainhash.Hash) (Transaction, bool) {
	tx, ok := s.transactions[hash]
	return tx, ok
}

func (s *txStore) exists(hash chainhash.Hash) bool {
	_, ok := s.transactions[hash]
	return ok
}

func (s *txStore) size() int {
	return len(s.transactions)
}

func (s *txStore) insert(tx Transaction) {
	hash := tx.Hash()
	s.transactions[hash] = tx
	s.bytes += len(tx.Serialize()) + chainhash.HashSize
}

func (s *txStore) remove(tx Transaction) {
	hash := tx.Hash()
	if _, ok := s.transactions[hash]; !ok {
		return
	}
	delete(s.transactions, hash)
	s.bytes -= len(tx.Serialize()) + chainhash.HashSize
}

// nullifierIndex maps a spent note's nullifier to the hash of the
// transaction that introduced it into the pool.
type nullifierIndex struct {
	owners map[chainhash.Hash]chainhash.Hash
	bytes  int
}

func newNullifierIndex() *nullifierIndex {
	return &nullifierIndex{
		owners: make(map[chainhash.Hash]chainhash.Hash),
	}
}

// lookup returns the hash of the transaction that owns nullifier, if any.
func (n *nullifierIndex) lookup(nullifier chainhash.Hash) (chainhash.Hash, bool) {
	hash, ok := n.owners[nullifier]
	return hash, ok
}

func (n *nullifierIndex) insert(nullifier, owner chainhash.Hash) {
	n.owners[nullifier] = owner
	n.bytes += chainhash.HashSize * 2
}

// removeIfOwnedBy removes the nullifier entry only if it still points at
// owner. This guards against removing a nullifier that has already been
// claimed by a replacement transaction.
func (n *nullifierIndex) removeIfOwnedBy(nullifier, owner chainhash.Hash) {
	current, ok := n.owners[nullifier]
	if !ok || current != owner {
		return
	}
	delete(n.owners, nullifier)
	n.bytes -= chainhash.HashSize * 2
}
