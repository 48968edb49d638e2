package transfertree

import (
	"bytes"
	"hash"

	"golang.org/x/crypto/sha3"
)

// NewKeccak256 returns the hasher the published roots are computed with:
// Keccak-256 with the legacy (pre SHA-3) padding, as used by Ethereum.
func NewKeccak256() hash.Hash {
	return sha3.NewLegacyKeccak256()
}

// Combine computes:
//
//	H( min(a,b) || max(a,b) )
//
// where min and max compare the values byte-wise. Combine(a,b) == Combine(b,a).
// ** the hasher is reset **
func Combine(hasher hash.Hash, a, b [HashBytes]byte) [HashBytes]byte {
	first, second := &a, &b
	if bytes.Compare(a[:], b[:]) >= 0 {
		first, second = &b, &a
	}

	hasher.Reset()
	_, _ = hasher.Write(first[:])
	_, _ = hasher.Write(second[:])

	var out [HashBytes]byte
	copy(out[:], hasher.Sum(out[:0]))
	return out
}

// Combine256 is Combine using a fresh Keccak-256 hasher.
func Combine256(a, b [HashBytes]byte) [HashBytes]byte {
	return Combine(NewKeccak256(), a, b)
}
