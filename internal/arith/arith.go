// Package arith collects the big-integer helpers the curve layer relies on:
// modular arithmetic against the group order and conversions between
// big.Int values, big-endian byte strings and hex strings.
package arith

import (
	"fmt"
	"math/big"
)

// ModAdd returns (a + b) mod m. The result is always in [0, m).
func ModAdd(a, b, m *big.Int) *big.Int {
	sum := new(big.Int).Add(a, b)
	return sum.Mod(sum, m)
}

// ModSub returns (a - b) mod m. The result is always in [0, m),
// including when a < b (big.Int.Mod is Euclidean for positive moduli).
func ModSub(a, b, m *big.Int) *big.Int {
	diff := new(big.Int).Sub(a, b)
	return diff.Mod(diff, m)
}

// ModMul returns (a * b) mod m. The result is always in [0, m).
func ModMul(a, b, m *big.Int) *big.Int {
	prod := new(big.Int).Mul(a, b)
	return prod.Mod(prod, m)
}

// ToBytes returns the minimal big-endian encoding of n.
// Zero encodes to an empty slice, matching big.Int.Bytes.
func ToBytes(n *big.Int) []byte {
	return n.Bytes()
}

// FromBytes interprets b as an unsigned big-endian integer.
func FromBytes(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// ToHex returns the lowercase hexadecimal representation of n without
// a 0x prefix and without leading zero digits.
func ToHex(n *big.Int) string {
	return n.Text(16)
}

// FromHex parses a lowercase or uppercase hex string (no 0x prefix)
// into an unsigned integer.
func FromHex(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex string %q", s)
	}
	if n.Sign() < 0 {
		return nil, fmt.Errorf("negative hex string %q", s)
	}
	return n, nil
}

// PadLeft left-pads the big-endian encoding b with zero bytes to width.
// It returns b unchanged if it is already width bytes or longer.
func PadLeft(b []byte, width int) []byte {
	if len(b) >= width {
		return b
	}
	padded := make([]byte, width)
	copy(padded[width-len(b):], b)
	return padded
}
