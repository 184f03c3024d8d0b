// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"encoding/hex"
)

// HashSize is the number of bytes used to represent a hash.
const HashSize = 32

// Hash is used in several of the mempool messages and common structures.  It
// typically represents the double sha256 of data, but the mempool treats it
// as an opaque 32-byte identifier — it is used both for transaction hashes
// and for nullifiers, which are unrelated values that happen to share the
// same fixed-size shape.
type Hash [HashSize]byte

// String returns the Hash as the hexadecimal string of the byte-reversed
// hash, matching the teacher's convention of displaying hashes the same way
// blocks and transactions are displayed on chain explorers.
func (h Hash) String() string {
	hexBytes := make([]byte, HashSize)
	for i := 0; i < HashSize/2; i++ {
		hexBytes[i], hexBytes[HashSize-1-i] = h[HashSize-1-i], h[i]
	}
	return hex.EncodeToString(hexBytes)
}

// Less reports whether h sorts strictly before other under raw-byte
// lexicographic comparison. This is the tie-breaker order the fee queue
// uses (spec: "ties broken by lexicographically larger hash").
func (h Hash) Less(other Hash) bool {
	for i := 0; i < HashSize; i++ {
		if h[i] != other[i] {
			return h[i] < other[i]
		}
	}
	return false
}
