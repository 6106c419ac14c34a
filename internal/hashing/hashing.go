// Package hashing provides the fixed-output hash used for deterministic
// point derivation: SHA-256 over a sequence of big-endian integer encodings.
package hashing

import (
	"crypto/sha256"
	"math/big"
)

// Sha256 hashes the concatenation of the minimal big-endian encodings of
// values and returns the 32-byte digest as an unsigned big-endian integer.
//
// Each value contributes exactly its big.Int.Bytes() encoding, with no
// length prefix and no padding. Chained derivations that feed one digest
// into the next therefore re-encode through big.Int, so a digest with a
// leading zero byte contributes 31 bytes on the next round. Callers that
// depend on a reproducible derivation chain depend on this exact behavior.
func Sha256(values ...*big.Int) *big.Int {
	h := sha256.New()
	for _, v := range values {
		h.Write(v.Bytes())
	}
	return new(big.Int).SetBytes(h.Sum(nil))
}
