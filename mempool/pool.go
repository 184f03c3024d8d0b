// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"fmt"
	"sync"

	"github.com/cryptoppp/ironfish/chainhash"
)

// bytesPerQueueSlot is the estimated per-entry overhead SizeBytes charges
// for each queue slot: a 32-byte hash plus an 8-byte fee. It is an
// estimate, not a measurement, and must stay fixed for external
// compatibility — see spec.md §6/§9.
const bytesPerQueueSlot = 40

// Config bundles the collaborators a Pool needs at construction time.
type Config struct {
	// Chain supplies the current tip, the Verifier used for expiration
	// checks, asynchronous header lookups, and the connect/disconnect
	// event stream. Required.
	Chain Chain

	// SizeGauge receives the pool's transaction count after every
	// insert and delete. Optional; defaults to a no-op.
	SizeGauge MetricsGauge
}

// Pool is an in-memory mempool maintaining four consistent views over the
// same set of candidate transactions: by hash, by nullifier, by
// fee-descending order, and by expiration-ascending order. See spec.md §3
// for the invariants all public operations must preserve between calls.
type Pool struct {
	mu sync.Mutex

	chain     Chain
	sizeGauge MetricsGauge

	store           *txStore
	nullifiers      *nullifierIndex
	feeQueue        *indexedQueue[mempoolEntry]
	expirationQueue *indexedQueue[expirationEntry]

	head *BlockHeader
}

// New creates a Pool wired to the given Config and subscribes it to the
// chain's connect/disconnect event stream. The subscription happens once,
// here, matching spec.md §6's "subscribed at construction."
func New(cfg *Config) (*Pool, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mempool config cannot be nil")
	}
	if cfg.Chain == nil {
		return nil, fmt.Errorf("mempool config requires a Chain")
	}

	sizeGauge := cfg.SizeGauge
	if sizeGauge == nil {
		sizeGauge = noopGauge{}
	}

	mp := &Pool{
		chain:      cfg.Chain,
		sizeGauge:  sizeGauge,
		store:      newTxStore(),
		nullifiers: newNullifierIndex(),
		feeQueue: newIndexedQueue(
			func(a, b mempoolEntry) bool {
				if a.fee != b.fee {
					return a.fee > b.fee
				}
				return b.hash.Less(a.hash)
			},
			func(e mempoolEntry) chainhash.Hash { return e.hash },
		),
		expirationQueue: newIndexedQueue(
			func(a, b expirationEntry) bool {
				return a.expirationSequence < b.expirationSequence
			},
			func(e expirationEntry) chainhash.Hash { return e.hash },
		),
		head: cfg.Chain.Head(),
	}

	cfg.Chain.Subscribe(mp.handleNotification)

	return mp, nil
}

// Size returns the number of transactions currently in the pool.
func (mp *Pool) Size() int {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	return mp.store.size()
}

// SizeBytes returns the pool's advisory total byte footprint: the true sum
// of serialized transaction and nullifier bytes, plus a fixed
// bytesPerQueueSlot estimate per fee-queue entry. See spec.md §6.
func (mp *Pool) SizeBytes() int {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	return mp.store.bytes + mp.nullifiers.bytes + mp.feeQueue.size()*bytesPerQueueSlot
}

// Exists reports whether a transaction with the given hash is in the pool.
func (mp *Pool) Exists(hash chainhash.Hash) bool {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	return mp.store.exists(hash)
}

// Get returns the transaction with the given hash, if present.
func (mp *Pool) Get(hash chainhash.Hash) (Transaction, bool) {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	return mp.store.get(hash)
}

// Head returns the chain tip as last observed by the pool, or nil if no
// block has ever been connected.
func (mp *Pool) Head() *BlockHeader {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	return mp.head
}

// addTransaction writes tx into all four indexes. It is idempotent by
// hash: if tx is already present it does nothing and returns false. Callers
// must hold mp.mu.
func (mp *Pool) addTransaction(tx Transaction) bool {
	hash := tx.Hash()
	if mp.store.exists(hash) {
		return false
	}

	mp.store.insert(tx)
	for _, spend := range tx.Spends() {
		mp.nullifiers.insert(spend.Nullifier, hash)
	}
	mp.feeQueue.add(mempoolEntry{fee: tx.Fee(), hash: hash})
	mp.expirationQueue.add(expirationEntry{
		expirationSequence: tx.ExpirationSequence(),
		hash:               hash,
	})

	mp.sizeGauge.Set(float64(mp.store.size()))

	return true
}

// deleteTransaction removes tx from all four indexes. It is idempotent by
// hash: if tx is absent it does nothing and returns false. Callers must
// hold mp.mu.
func (mp *Pool) deleteTransaction(tx Transaction) bool {
	hash := tx.Hash()
	if !mp.store.exists(hash) {
		return false
	}

	mp.store.remove(tx)
	mp.feeQueue.remove(hash)
	mp.expirationQueue.remove(hash)
	for _, spend := range tx.Spends() {
		mp.nullifiers.removeIfOwnedBy(spend.Nullifier, hash)
	}

	mp.sizeGauge.Set(float64(mp.store.size()))

	return true
}

// deleteByHash looks up hash in the store and delegates to
// deleteTransaction. Returns false if hash is not present. Callers must
// hold mp.mu.
func (mp *Pool) deleteByHash(hash chainhash.Hash) bool {
	tx, ok := mp.store.get(hash)
	if !ok {
		return false
	}
	return mp.deleteTransaction(tx)
}
