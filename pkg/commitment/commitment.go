// Package commitment provides commitment schemes built atop the curve
// abstraction: a salted SHA-256 hash commitment over big-integer material,
// and a Pedersen commitment using the curve's second generator.
package commitment

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"math/big"
)

// SaltSize is the number of random bytes blinding a hash commitment.
const SaltSize = 32

// HashCommitment is the output of the hash commitment scheme:
// C = SHA-256(salt || parts), revealed later by publishing the salt.
type HashCommitment struct {
	C    []byte // commitment digest
	Salt []byte // decommitment value
}

// NewHash commits to the given integer values under a fresh random salt.
// Each value contributes its minimal big-endian encoding; the salt comes
// first so variable-length material cannot slide into it.
func NewHash(parts ...*big.Int) (*HashCommitment, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("reading commitment salt: %w", err)
	}
	return &HashCommitment{C: digest(salt, parts), Salt: salt}, nil
}

// VerifyHash reports whether commitment c opens to the given values under
// salt. The comparison is constant time.
func VerifyHash(c, salt []byte, parts ...*big.Int) bool {
	if len(c) != sha256.Size || len(salt) != SaltSize {
		return false
	}
	return subtle.ConstantTimeCompare(digest(salt, parts), c) == 1
}

func digest(salt []byte, parts []*big.Int) []byte {
	h := sha256.New()
	h.Write(salt)
	for _, p := range parts {
		h.Write(p.Bytes())
	}
	return h.Sum(nil)
}
