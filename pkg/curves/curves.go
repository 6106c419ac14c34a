// Package curves provides a curve-agnostic abstraction over elliptic-curve
// scalars and points for use by multi-party protocols, together with a
// concrete secp256k1 instantiation.
//
// Scalars are field elements modulo the group order; points are validated
// affine curve points. Both are immutable: every operation returns a new
// value and never mutates its receiver, so values can be shared across
// goroutines for reading without locking.
package curves

import (
	"errors"
	"math/big"
)

// Fault kinds surfaced by scalar and point construction. All failures are
// reported synchronously at the call that triggered them; nothing retries.
var (
	// ErrBackendRejection wraps a refusal by the underlying curve library:
	// invalid raw scalar bytes, off-curve coordinates, or points that do
	// not combine.
	ErrBackendRejection = errors.New("curve backend rejected input")

	// ErrMalformedInput wraps a serialized form that fails to parse:
	// invalid hex, or a missing or unrecognized structured field.
	ErrMalformedInput = errors.New("malformed serialized input")

	// ErrInvariantViolation reports that a re-padded encoding failed to
	// reproduce its source integer. It indicates a library inconsistency,
	// not a recoverable input error.
	ErrInvariantViolation = errors.New("encoding invariant violated")
)

// Scalar represents an element of the curve's scalar field, always reduced
// to the range [0, order).
type Scalar interface {
	// BigInt returns the scalar's value as a big integer.
	BigInt() *big.Int

	// Bytes returns the canonical fixed-width big-endian encoding.
	Bytes() []byte

	// Add returns this scalar plus another, modulo the group order.
	Add(other Scalar) Scalar

	// Sub returns this scalar minus another, modulo the group order.
	Sub(other Scalar) Scalar

	// Mul returns this scalar times another, modulo the group order.
	Mul(other Scalar) Scalar

	// Equal reports whether both scalars hold the same field element.
	Equal(other Scalar) bool
}

// Point represents a validated affine point on the curve.
type Point interface {
	// X returns the affine x-coordinate as a big integer.
	X() *big.Int

	// Y returns the affine y-coordinate as a big integer.
	Y() *big.Int

	// Bytes returns the uncompressed encoding 0x04 || X || Y with both
	// coordinates padded to the canonical coordinate width.
	Bytes() []byte

	// CompressedBigInt returns the compressed point encoding interpreted
	// as a big-endian integer. The result is hash input material, not a
	// faithful numeric representation of the point.
	CompressedBigInt() *big.Int

	// Add returns the group sum of this point and another. It fails when
	// the backend cannot represent the sum, e.g. adding a point to its
	// negation.
	Add(other Point) (Point, error)

	// ScalarMul returns this point multiplied by a scalar.
	ScalarMul(s Scalar) Point

	// Equal reports whether both points are the same group element.
	Equal(other Point) bool
}

// Curve groups the constructors and constants of a concrete curve.
type Curve interface {
	// Name returns the name of the curve.
	Name() string

	// Order returns the order of the base point (group order).
	Order() *big.Int

	// NewRandomScalar draws a scalar from a cryptographically secure
	// source. It fails without retrying when the backend rejects the
	// drawn bytes (all-zero, or at or above the group order).
	NewRandomScalar() (Scalar, error)

	// NewScalarFromBigInt constructs a scalar from n reduced modulo the
	// group order.
	NewScalarFromBigInt(n *big.Int) (Scalar, error)

	// Generator returns the curve's fixed base point.
	Generator() Point

	// NewRandomPoint returns a random scalar multiple of the generator.
	NewRandomPoint() (Point, error)

	// SecondGenerator returns an alternate base point with no known
	// discrete-log relation to Generator, derived deterministically.
	SecondGenerator() (Point, error)

	// NewPointFromCoords reconstructs a point from affine coordinates,
	// failing if they do not describe a point on the curve.
	NewPointFromCoords(x, y *big.Int) (Point, error)
}
