// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"github.com/cryptoppp/ironfish/chainhash"
)

// fakeTx is a minimal Transaction used across the test suite. It carries
// just enough state to exercise every decision the pool makes: hash, fee,
// expiration, spends, and the miner's-fee flag.
type fakeTx struct {
	hash       chainhash.Hash
	fee        int64
	expiration uint32
	spends     []Spend
	minersFee  bool
	payload    []byte
}

func newFakeTx(id byte, fee int64) *fakeTx {
	return &fakeTx{
		hash:    chainhash.Hash{id},
		fee:     fee,
		payload: []byte{id},
	}
}

func (tx *fakeTx) Hash() chainhash.Hash       { return tx.hash }
func (tx *fakeTx) Fee() int64                 { return tx.fee }
func (tx *fakeTx) ExpirationSequence() uint32 { return tx.expiration }
func (tx *fakeTx) Spends() []Spend            { return tx.spends }
func (tx *fakeTx) Serialize() []byte          { return tx.payload }
func (tx *fakeTx) IsMinersFee() bool          { return tx.minersFee }

func nullifier(id byte) chainhash.Hash {
	return chainhash.Hash{0xff, id}
}

// fakeVerifier implements Verifier with spec.md §6's documented rule:
// txSequence != 0 && txSequence <= headSequence.
type fakeVerifier struct{}

func (fakeVerifier) IsExpiredSequence(txSequence, headSequence uint32) bool {
	return txSequence != 0 && txSequence <= headSequence
}

// fakeBlock implements Block over a fixed header and transaction list.
type fakeBlock struct {
	header *BlockHeader
	txs    []Transaction
}

func (b *fakeBlock) Header() *BlockHeader        { return b.header }
func (b *fakeBlock) Transactions() []Transaction { return b.txs }

// fakeChain implements Chain for tests. Headers are registered by hash so
// GetHeader can resolve disconnects; headersByHash defaults to returning
// (nil, nil) for unknown hashes, matching spec's documented soft-error
// behavior.
type fakeChain struct {
	head          *BlockHeader
	verifier      Verifier
	headersByHash map[chainhash.Hash]*BlockHeader
	callback      NotificationCallback
}

func newFakeChain(headSequence uint32) *fakeChain {
	head := &BlockHeader{Sequence: headSequence}
	return &fakeChain{
		head:          head,
		verifier:      fakeVerifier{},
		headersByHash: map[chainhash.Hash]*BlockHeader{head.Hash: head},
	}
}

func (c *fakeChain) Head() *BlockHeader { return c.head }

func (c *fakeChain) Verifier() Verifier { return c.verifier }

func (c *fakeChain) GetHeader(hash chainhash.Hash) (*BlockHeader, error) {
	return c.headersByHash[hash], nil
}

func (c *fakeChain) Subscribe(cb NotificationCallback) {
	c.callback = cb
}

// registerHeader makes a header resolvable by GetHeader, as if the chain
// already knew about it.
func (c *fakeChain) registerHeader(h *BlockHeader) {
	c.headersByHash[h.Hash] = h
}

// connect delivers an NTBlockConnected notification as the chain would.
func (c *fakeChain) connect(block *fakeBlock) {
	c.registerHeader(block.Header())
	if c.callback != nil {
		c.callback(&Notification{Type: NTBlockConnected, Data: block})
	}
}

// disconnect delivers an NTBlockDisconnected notification as the chain
// would.
func (c *fakeChain) disconnect(block *fakeBlock) {
	if c.callback != nil {
		c.callback(&Notification{Type: NTBlockDisconnected, Data: block})
	}
}

// newTestPool builds a Pool wired to a fresh fakeChain at the given head
// sequence, returning both for the test to drive chain events through.
func newTestPool(headSequence uint32) (*Pool, *fakeChain) {
	chain := newFakeChain(headSequence)
	pool, err := New(&Config{Chain: chain})
	if err != nil {
		panic(err)
	}
	return pool, chain
}
