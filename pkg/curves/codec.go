package curves

import (
	"encoding/json"
	"fmt"

	"github.com/smallyu/go-curves/internal/arith"
)

// The JSON forms below are a wire contract shared with other
// implementations of the same abstraction: a scalar is a single lowercase
// hex string of its integer value with no 0x prefix and no fixed width; a
// point is an object with exactly the fields "x" and "y", each a hex
// string of the respective coordinate. Hex case, field names and the
// reduction behavior on input must not change.

// MarshalJSON encodes the scalar as a hex string, e.g. 123456 as "1e240".
func (s *Secp256k1Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(arith.ToHex(s.BigInt()))
}

// UnmarshalJSON parses a hex string and rebuilds the scalar through
// reduction modulo the group order. An input encoding a value at or above
// the order is NOT rejected: it reduces silently, so the decoded scalar
// can differ from the literal input value. Protocol code relies on this.
func (s *Secp256k1Scalar) UnmarshalJSON(data []byte) error {
	var hexStr string
	if err := json.Unmarshal(data, &hexStr); err != nil {
		return fmt.Errorf("%w: scalar is not a JSON string: %v", ErrMalformedInput, err)
	}

	n, err := arith.FromHex(hexStr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	parsed, err := newScalarFromBigInt(n)
	if err != nil {
		return err
	}
	s.raw = parsed.raw
	return nil
}

// MarshalJSON encodes the point as {"x": hex, "y": hex} with minimal
// lowercase hex coordinates (leading zero nibbles dropped).
func (p *Secp256k1Point) MarshalJSON() ([]byte, error) {
	rec := struct {
		X string `json:"x"`
		Y string `json:"y"`
	}{
		X: arith.ToHex(p.X()),
		Y: arith.ToHex(p.Y()),
	}
	return json.Marshal(rec)
}

// UnmarshalJSON reads the "x" and "y" fields in either order and rebuilds
// the point through NewPointFromCoords, inheriting its on-curve validation
// and padding checks. A field other than "x" or "y" is a fatal parse
// fault, as is a missing coordinate.
//
// The record is decoded through a map rather than a tagged struct: struct
// tags match case-insensitively, which would let "X" and "Y" slip past an
// unknown-field check, and the field names are case-sensitive on the wire.
func (p *Secp256k1Point) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	for name := range fields {
		if name != "x" && name != "y" {
			return fmt.Errorf("%w: unrecognized field %q in point record", ErrMalformedInput, name)
		}
	}

	xRaw, ok := fields["x"]
	if !ok {
		return fmt.Errorf("%w: point record is missing the \"x\" field", ErrMalformedInput)
	}
	yRaw, ok := fields["y"]
	if !ok {
		return fmt.Errorf("%w: point record is missing the \"y\" field", ErrMalformedInput)
	}

	var xHex, yHex string
	if err := json.Unmarshal(xRaw, &xHex); err != nil {
		return fmt.Errorf("%w: x coordinate is not a JSON string: %v", ErrMalformedInput, err)
	}
	if err := json.Unmarshal(yRaw, &yHex); err != nil {
		return fmt.Errorf("%w: y coordinate is not a JSON string: %v", ErrMalformedInput, err)
	}

	x, err := arith.FromHex(xHex)
	if err != nil {
		return fmt.Errorf("%w: x coordinate: %v", ErrMalformedInput, err)
	}
	y, err := arith.FromHex(yHex)
	if err != nil {
		return fmt.Errorf("%w: y coordinate: %v", ErrMalformedInput, err)
	}

	parsed, err := newPointFromCoords(x, y)
	if err != nil {
		return err
	}
	p.raw = parsed.raw
	return nil
}
