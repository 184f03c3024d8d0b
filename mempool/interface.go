// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"github.com/cryptoppp/ironfish/chainhash"
)

// Transaction is the view of a candidate transaction the pool depends on.
// Cryptographic validation, construction, and signing all happen upstream
// of the pool; the pool only needs to index and order transactions that
// have already cleared the network layer's checks.
type Transaction interface {
	// Hash returns the transaction's unique 32-byte digest.
	Hash() chainhash.Hash

	// Fee returns the fee the transaction pays, used both for block
	// assembly ordering and for double-spend replacement.
	Fee() int64

	// ExpirationSequence returns the block height after which the
	// transaction is no longer valid. Zero means the transaction never
	// expires.
	ExpirationSequence() uint32

	// Spends returns the notes this transaction consumes.
	Spends() []Spend

	// Serialize returns the transaction's wire encoding, used only for
	// the pool's advisory byte accounting.
	Serialize() []byte

	// IsMinersFee reports whether this is the coinbase-style transaction
	// that pays the block producer. Miner's-fee transactions are never
	// reinserted on disconnect.
	IsMinersFee() bool
}

// Spend identifies a single consumed note.
type Spend struct {
	// Nullifier is the opaque identifier of the note being spent. Two
	// transactions that spend the same nullifier double-spend each
	// other.
	Nullifier chainhash.Hash
}

// Verifier performs the cryptographic and chain-rule checks the pool
// itself does not implement.
type Verifier interface {
	// IsExpiredSequence reports whether a transaction with the given
	// expiration sequence is expired relative to headSequence. A
	// txSequence of zero never expires.
	IsExpiredSequence(txSequence, headSequence uint32) bool
}

// BlockHeader is the subset of chain-tip metadata the pool observes.
type BlockHeader struct {
	// Sequence is the block height.
	Sequence uint32

	// Hash is the block's own hash.
	Hash chainhash.Hash

	// PreviousBlockHash is the hash of the parent block, used by
	// onDisconnect to walk back to the prior tip.
	PreviousBlockHash chainhash.Hash
}

// Block is the view of a connected or disconnected block the pool reacts
// to.
type Block interface {
	// Header returns the block's header.
	Header() *BlockHeader

	// Transactions returns the block's transactions, including its
	// miner's-fee transaction if any.
	Transactions() []Transaction
}

// NotificationType identifies the kind of chain event a Notification
// carries, mirroring the chain layer's own connect/disconnect event
// stream.
type NotificationType int

const (
	// NTBlockConnected indicates a block was connected to the chain tip.
	NTBlockConnected NotificationType = iota

	// NTBlockDisconnected indicates a block was disconnected from the
	// chain tip.
	NTBlockDisconnected
)

// Notification wraps a single chain event delivered to subscribers.
type Notification struct {
	Type NotificationType
	Data Block
}

// NotificationCallback is used by the chain to deliver connect/disconnect
// events to subscribers. Events are delivered in emission order and the
// chain serializes its own event stream, so the pool never sees two events
// processed concurrently.
type NotificationCallback func(*Notification)

// Chain is the pool's external collaborator: it exposes the current tip,
// the injected Verifier, asynchronous header lookups for reorg handling,
// and a subscription point for connect/disconnect events.
type Chain interface {
	// Head returns the current chain tip as observed by the chain, or
	// nil if the chain has no blocks yet.
	Head() *BlockHeader

	// Verifier returns the chain's transaction verifier.
	Verifier() Verifier

	// GetHeader asynchronously resolves a block hash to its header. It
	// returns a nil header and nil error if the hash is unknown.
	GetHeader(hash chainhash.Hash) (*BlockHeader, error)

	// Subscribe registers a callback to receive connect/disconnect
	// notifications. The pool calls this once, at construction.
	Subscribe(NotificationCallback)
}

// MetricsGauge is the single numeric gauge the pool reports its size
// through. A *prometheus.Gauge satisfies this interface directly.
type MetricsGauge interface {
	Set(float64)
}

// noopGauge is used when the caller does not provide a MetricsGauge.
type noopGauge struct{}

func (noopGauge) Set(float64) {}
