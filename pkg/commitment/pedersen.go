package commitment

import (
	"errors"

	"github.com/smallyu/go-curves/pkg/curves"
)

// ErrZeroBlinding is returned when a Pedersen commitment is requested with
// a zero blinding factor, which would leave the message unhidden.
var ErrZeroBlinding = errors.New("pedersen blinding factor is zero")

// Pedersen computes the Pedersen commitment m*G + r*H, where G is the
// curve's generator and H its second generator. Because no discrete-log
// relation between G and H is known, the commitment binds m while r hides
// it. The blinding factor r must be a nonzero random scalar; m may be any
// scalar, including zero.
func Pedersen(curve curves.Curve, m, r curves.Scalar) (curves.Point, error) {
	if r.BigInt().Sign() == 0 {
		return nil, ErrZeroBlinding
	}

	h, err := curve.SecondGenerator()
	if err != nil {
		return nil, err
	}

	blind := h.ScalarMul(r)
	if m.BigInt().Sign() == 0 {
		return blind, nil
	}
	return curve.Generator().ScalarMul(m).Add(blind)
}

// PedersenOpen reports whether commitment c opens to message m under
// blinding factor r.
func PedersenOpen(curve curves.Curve, c curves.Point, m, r curves.Scalar) (bool, error) {
	recomputed, err := Pedersen(curve, m, r)
	if err != nil {
		return false, err
	}
	return recomputed.Equal(c), nil
}
