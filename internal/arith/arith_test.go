package arith

import (
	"bytes"
	"math/big"
	"testing"
)

func TestModAdd(t *testing.T) {
	m := big.NewInt(97)

	got := ModAdd(big.NewInt(90), big.NewInt(10), m)
	if got.Cmp(big.NewInt(3)) != 0 {
		t.Errorf("ModAdd(90, 10, 97) = %s, want 3", got)
	}

	// Adding zero acts as a plain reduction, including for negatives.
	got = ModAdd(big.NewInt(-1), big.NewInt(0), m)
	if got.Cmp(big.NewInt(96)) != 0 {
		t.Errorf("ModAdd(-1, 0, 97) = %s, want 96", got)
	}
}

func TestModSub(t *testing.T) {
	m := big.NewInt(97)

	got := ModSub(big.NewInt(5), big.NewInt(10), m)
	if got.Cmp(big.NewInt(92)) != 0 {
		t.Errorf("ModSub(5, 10, 97) = %s, want 92", got)
	}
	if got.Sign() < 0 {
		t.Error("ModSub returned a negative result")
	}
}

func TestModMul(t *testing.T) {
	m := big.NewInt(97)

	got := ModMul(big.NewInt(12), big.NewInt(50), m)
	want := big.NewInt(600 % 97)
	if got.Cmp(want) != 0 {
		t.Errorf("ModMul(12, 50, 97) = %s, want %s", got, want)
	}
}

func TestByteConversion(t *testing.T) {
	n := big.NewInt(0x1e240)
	b := ToBytes(n)
	if !bytes.Equal(b, []byte{0x01, 0xe2, 0x40}) {
		t.Errorf("ToBytes(123456) = %x", b)
	}
	if FromBytes(b).Cmp(n) != 0 {
		t.Error("FromBytes did not invert ToBytes")
	}

	// Zero has an empty minimal encoding.
	if len(ToBytes(big.NewInt(0))) != 0 {
		t.Error("ToBytes(0) should be empty")
	}
}

func TestHexConversion(t *testing.T) {
	if got := ToHex(big.NewInt(123456)); got != "1e240" {
		t.Errorf("ToHex(123456) = %q, want \"1e240\"", got)
	}

	n, err := FromHex("1e240")
	if err != nil {
		t.Fatalf("FromHex failed: %v", err)
	}
	if n.Cmp(big.NewInt(123456)) != 0 {
		t.Errorf("FromHex(\"1e240\") = %s", n)
	}

	if _, err := FromHex("not hex"); err == nil {
		t.Error("FromHex accepted garbage")
	}
	if _, err := FromHex("-1e240"); err == nil {
		t.Error("FromHex accepted a negative value")
	}
}

func TestPadLeft(t *testing.T) {
	b := PadLeft([]byte{0xab}, 4)
	if !bytes.Equal(b, []byte{0x00, 0x00, 0x00, 0xab}) {
		t.Errorf("PadLeft = %x", b)
	}

	full := []byte{1, 2, 3, 4}
	if got := PadLeft(full, 4); !bytes.Equal(got, full) {
		t.Errorf("PadLeft of full-width input = %x", got)
	}

	wide := []byte{1, 2, 3, 4, 5}
	if got := PadLeft(wide, 4); !bytes.Equal(got, wide) {
		t.Errorf("PadLeft of oversized input = %x", got)
	}
}
