package curves

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-curves/internal/arith"
	"github.com/smallyu/go-curves/internal/hashing"
)

const (
	// scalarSize is the canonical big-endian width of a scalar encoding.
	scalarSize = 32

	// coordSize is the canonical big-endian width of one affine
	// coordinate: half of the uncompressed payload after the format byte.
	coordSize = (secp256k1.PubKeyBytesLenUncompressed - 1) / 2

	// Format bytes of the SEC 1 point encodings the backend understands.
	uncompressedPrefix   = 0x04
	compressedEvenPrefix = 0x02
)

// s256 is the backend's curve description: group order, generator
// coordinates and big-integer group operations. It is read-only after the
// backend initializes it, so concurrent access needs no locking.
var s256 = secp256k1.S256()

// Secp256k1 implements Curve for the secp256k1 curve, delegating group
// arithmetic and point validation to the decred backend.
type Secp256k1 struct{}

// NewSecp256k1 returns the secp256k1 instantiation of the curve abstraction.
func NewSecp256k1() Curve {
	return &Secp256k1{}
}

func (c *Secp256k1) Name() string {
	return "secp256k1"
}

// Order returns the group order n. The caller receives a copy and may
// modify it freely.
func (c *Secp256k1) Order() *big.Int {
	return new(big.Int).Set(s256.Params().N)
}

// NewRandomScalar draws 32 bytes from crypto/rand and constructs a raw
// scalar from them. The backend flags bytes at or above the group order
// and the all-zero string; both are surfaced as ErrBackendRejection
// without a retry, so callers holding long-lived loops must retry
// themselves. The rejection probability is negligible (roughly 2^-128 for
// overflow, 2^-256 for zero) but not zero.
func (c *Secp256k1) NewRandomScalar() (Scalar, error) {
	var buf [scalarSize]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return nil, fmt.Errorf("reading randomness: %w", err)
	}
	return scalarFromRawBytes(&buf)
}

// scalarFromRawBytes constructs a scalar from 32 raw bytes, surfacing the
// backend's rejection of out-of-range or all-zero values.
func scalarFromRawBytes(buf *[scalarSize]byte) (*Secp256k1Scalar, error) {
	s := &Secp256k1Scalar{}
	if overflow := s.raw.SetBytes(buf); overflow != 0 {
		return nil, fmt.Errorf("%w: raw bytes exceed group order", ErrBackendRejection)
	}
	if s.raw.IsZero() {
		return nil, fmt.Errorf("%w: raw bytes are all zero", ErrBackendRejection)
	}
	return s, nil
}

// NewScalarFromBigInt reduces n modulo the group order, left-pads the
// big-endian encoding to the canonical width and constructs the raw
// scalar. Negative inputs reduce into [0, order) as well.
func (c *Secp256k1) NewScalarFromBigInt(n *big.Int) (Scalar, error) {
	return newScalarFromBigInt(n)
}

func newScalarFromBigInt(n *big.Int) (*Secp256k1Scalar, error) {
	reduced := arith.ModAdd(n, big.NewInt(0), s256.Params().N)

	b := arith.PadLeft(arith.ToBytes(reduced), scalarSize)
	if len(b) != scalarSize {
		// Unreachable with a correct reduction, defended regardless.
		return nil, fmt.Errorf("%w: reduced scalar encoding is %d bytes, want %d",
			ErrInvariantViolation, len(b), scalarSize)
	}

	s := &Secp256k1Scalar{}
	var buf [scalarSize]byte
	copy(buf[:], b)
	if overflow := s.raw.SetBytes(&buf); overflow != 0 {
		return nil, fmt.Errorf("%w: reduced scalar still exceeds group order", ErrInvariantViolation)
	}
	return s, nil
}

// Generator constructs the fixed base point from the uncompressed layout
// 0x04 || Gx || Gy using the backend's generator coordinates.
func (c *Secp256k1) Generator() Point {
	params := s256.Params()
	buf := make([]byte, 0, secp256k1.PubKeyBytesLenUncompressed)
	buf = append(buf, uncompressedPrefix)
	buf = append(buf, arith.PadLeft(params.Gx.Bytes(), coordSize)...)
	buf = append(buf, arith.PadLeft(params.Gy.Bytes(), coordSize)...)

	pk, err := secp256k1.ParsePubKey(buf)
	if err != nil {
		// The generator coordinates are curve constants; failing to
		// parse them means the backend is broken.
		panic(fmt.Sprintf("secp256k1 generator rejected by backend: %v", err))
	}
	return &Secp256k1Point{raw: pk}
}

// NewRandomPoint multiplies the generator by a freshly drawn random scalar.
func (c *Secp256k1) NewRandomPoint() (Point, error) {
	k, err := c.NewRandomScalar()
	if err != nil {
		return nil, err
	}
	return c.Generator().ScalarMul(k), nil
}

var (
	secondGenOnce sync.Once
	secondGen     *Secp256k1Point
	secondGenErr  error
)

// SecondGenerator derives an alternate base point with no known
// discrete-log relation to the generator: the compressed generator
// encoding is read as an integer and hashed three times with SHA-256, and
// the final digest becomes an x-coordinate under the even-y compressed
// prefix 0x02. The construction is a nothing-up-my-sleeve derivation;
// interoperability depends on exactly three hash iterations and the fixed
// prefix byte, so neither may change. The result is computed once and
// shared, which is safe because points are immutable.
func (c *Secp256k1) SecondGenerator() (Point, error) {
	secondGenOnce.Do(func() {
		digest := hashing.Sha256(c.Generator().CompressedBigInt())
		digest = hashing.Sha256(digest)
		digest = hashing.Sha256(digest)

		buf := append([]byte{compressedEvenPrefix}, arith.ToBytes(digest)...)
		pk, err := secp256k1.ParsePubKey(buf)
		if err != nil {
			secondGenErr = fmt.Errorf("%w: derived x-coordinate is not on the curve: %v",
				ErrBackendRejection, err)
			return
		}
		secondGen = &Secp256k1Point{raw: pk}
	})
	if secondGenErr != nil {
		return nil, secondGenErr
	}
	return secondGen, nil
}

// NewPointFromCoords left-pads each coordinate to the canonical width,
// checks that the padded encodings still read back to the original
// integers, prefixes the uncompressed format byte and hands the result to
// the backend, which validates that (x, y) lies on the curve.
func (c *Secp256k1) NewPointFromCoords(x, y *big.Int) (Point, error) {
	return newPointFromCoords(x, y)
}

func newPointFromCoords(x, y *big.Int) (*Secp256k1Point, error) {
	xb := arith.PadLeft(arith.ToBytes(x), coordSize)
	yb := arith.PadLeft(arith.ToBytes(y), coordSize)
	if len(xb) != coordSize || len(yb) != coordSize {
		return nil, fmt.Errorf("%w: coordinate wider than %d bytes", ErrBackendRejection, coordSize)
	}
	if arith.FromBytes(xb).Cmp(x) != 0 || arith.FromBytes(yb).Cmp(y) != 0 {
		return nil, fmt.Errorf("%w: padded coordinate does not reproduce its integer", ErrInvariantViolation)
	}

	buf := make([]byte, 0, secp256k1.PubKeyBytesLenUncompressed)
	buf = append(buf, uncompressedPrefix)
	buf = append(buf, xb...)
	buf = append(buf, yb...)

	pk, err := secp256k1.ParsePubKey(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendRejection, err)
	}
	return &Secp256k1Point{raw: pk}, nil
}

// Secp256k1Scalar implements Scalar backed by the decred ModNScalar type,
// which keeps the value reduced modulo the group order.
//
// Arithmetic round-trips through big integers and the modular helpers
// rather than using native field operations. That is deliberate: it keeps
// the semantics identical across backends at the cost of speed, which is
// acceptable at protocol-level call volume.
type Secp256k1Scalar struct {
	raw secp256k1.ModNScalar
}

// BigInt interprets the scalar's canonical bytes as a big-endian unsigned
// integer.
func (s *Secp256k1Scalar) BigInt() *big.Int {
	b := s.raw.Bytes()
	return arith.FromBytes(b[:])
}

// Bytes returns the canonical 32-byte big-endian encoding.
func (s *Secp256k1Scalar) Bytes() []byte {
	b := s.raw.Bytes()
	return b[:]
}

// Add returns s + other mod the group order.
func (s *Secp256k1Scalar) Add(other Scalar) Scalar {
	return mustScalarFromBigInt(arith.ModAdd(s.BigInt(), other.BigInt(), s256.Params().N))
}

// Sub returns s - other mod the group order.
func (s *Secp256k1Scalar) Sub(other Scalar) Scalar {
	return mustScalarFromBigInt(arith.ModSub(s.BigInt(), other.BigInt(), s256.Params().N))
}

// Mul returns s * other mod the group order.
func (s *Secp256k1Scalar) Mul(other Scalar) Scalar {
	return mustScalarFromBigInt(arith.ModMul(s.BigInt(), other.BigInt(), s256.Params().N))
}

// mustScalarFromBigInt constructs a scalar from an already-reduced value.
// Construction cannot fail for values in [0, order); if it does anyway the
// library is inconsistent with itself, and panicking here keeps that loud
// instead of deferring a nil dereference to the caller.
func mustScalarFromBigInt(n *big.Int) *Secp256k1Scalar {
	res, err := newScalarFromBigInt(n)
	if err != nil {
		panic(fmt.Sprintf("reduced scalar failed to encode: %v", err))
	}
	return res
}

// Equal compares the underlying field elements only.
func (s *Secp256k1Scalar) Equal(other Scalar) bool {
	o, ok := other.(*Secp256k1Scalar)
	if !ok {
		return false
	}
	return s.raw.Equals(&o.raw)
}

// Secp256k1Point implements Point as a thin wrapper around the backend's
// validated public key representation. Every value held by a
// Secp256k1Point has already passed the backend's on-curve check.
type Secp256k1Point struct {
	raw *secp256k1.PublicKey
}

// X returns the affine x-coordinate, read from the first half of the
// uncompressed serialization after the format byte.
func (p *Secp256k1Point) X() *big.Int {
	ser := p.raw.SerializeUncompressed()
	return arith.FromBytes(ser[1 : 1+coordSize])
}

// Y returns the affine y-coordinate, read from the second half of the
// uncompressed serialization.
func (p *Secp256k1Point) Y() *big.Int {
	ser := p.raw.SerializeUncompressed()
	return arith.FromBytes(ser[1+coordSize:])
}

// Bytes returns 0x04 || X || Y with both coordinates padded to the
// canonical width.
func (p *Secp256k1Point) Bytes() []byte {
	buf := make([]byte, 0, secp256k1.PubKeyBytesLenUncompressed)
	buf = append(buf, uncompressedPrefix)
	buf = append(buf, arith.PadLeft(arith.ToBytes(p.X()), coordSize)...)
	buf = append(buf, arith.PadLeft(arith.ToBytes(p.Y()), coordSize)...)
	return buf
}

// CompressedBigInt returns the 33-byte compressed encoding interpreted as
// a big-endian integer, for use as hash input material.
func (p *Secp256k1Point) CompressedBigInt() *big.Int {
	return arith.FromBytes(p.raw.SerializeCompressed())
}

// Add returns the group sum p + other. Adding a point to its negation has
// no affine representation and surfaces the backend's rejection.
func (p *Secp256k1Point) Add(other Point) (Point, error) {
	o, ok := other.(*Secp256k1Point)
	if !ok {
		return nil, fmt.Errorf("%w: cannot combine points from different curves", ErrBackendRejection)
	}

	x, y := s256.Add(p.X(), p.Y(), o.X(), o.Y())
	sum, err := newPointFromCoords(x, y)
	if err != nil {
		return nil, fmt.Errorf("points do not combine: %w", err)
	}
	return sum, nil
}

// ScalarMul returns k * p as a new Point; the receiver is left untouched.
// It panics when the product has no affine representation, which can only
// happen when k is the zero scalar.
func (p *Secp256k1Point) ScalarMul(k Scalar) Point {
	s, ok := k.(*Secp256k1Scalar)
	if !ok {
		panic("secp256k1 point multiplied by scalar of a different curve")
	}

	kb := s.raw.Bytes()
	x, y := s256.ScalarMult(p.X(), p.Y(), kb[:])
	res, err := newPointFromCoords(x, y)
	if err != nil {
		panic(fmt.Sprintf("scalar multiplication left the curve: %v", err))
	}
	return res
}

// Equal reports whether both points are the same group element.
func (p *Secp256k1Point) Equal(other Point) bool {
	o, ok := other.(*Secp256k1Point)
	if !ok {
		return false
	}
	return p.raw.IsEqual(o.raw)
}
