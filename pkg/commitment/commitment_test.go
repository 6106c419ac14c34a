package commitment

import (
	"math/big"
	"testing"
)

func TestHashCommitmentRoundTrip(t *testing.T) {
	msg := big.NewInt(123456)

	comm, err := NewHash(msg)
	if err != nil {
		t.Fatalf("NewHash failed: %v", err)
	}
	if len(comm.C) != 32 {
		t.Errorf("commitment digest is %d bytes, want 32", len(comm.C))
	}
	if len(comm.Salt) != SaltSize {
		t.Errorf("salt is %d bytes, want %d", len(comm.Salt), SaltSize)
	}

	if !VerifyHash(comm.C, comm.Salt, msg) {
		t.Fatal("valid commitment failed to verify")
	}
}

func TestHashCommitmentRejectsTampering(t *testing.T) {
	msg := big.NewInt(424242)
	comm, err := NewHash(msg)
	if err != nil {
		t.Fatalf("NewHash failed: %v", err)
	}

	if VerifyHash(comm.C, comm.Salt, big.NewInt(424243)) {
		t.Error("verification passed for a different message")
	}

	badSalt := make([]byte, SaltSize)
	copy(badSalt, comm.Salt)
	badSalt[0] ^= 0xff
	if VerifyHash(comm.C, badSalt, msg) {
		t.Error("verification passed for a tampered salt")
	}

	badC := make([]byte, len(comm.C))
	copy(badC, comm.C)
	badC[0] ^= 0xff
	if VerifyHash(badC, comm.Salt, msg) {
		t.Error("verification passed for a tampered commitment")
	}
}

func TestHashCommitmentMultipleParts(t *testing.T) {
	a, b := big.NewInt(7), big.NewInt(11)

	comm, err := NewHash(a, b)
	if err != nil {
		t.Fatalf("NewHash failed: %v", err)
	}

	if !VerifyHash(comm.C, comm.Salt, a, b) {
		t.Fatal("multi-part commitment failed to verify")
	}
	if VerifyHash(comm.C, comm.Salt, b, a) {
		t.Error("verification ignored part ordering")
	}
}
