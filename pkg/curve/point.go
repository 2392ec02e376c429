package curve

import (
	"encoding/hex"
	"encoding/json"

	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// Point is a bn254 G1 curve point, with a distinguished identity O.
type Point struct {
	p bn254.G1Affine
}

var generatorG = mustGenerator()

func mustGenerator() Point {
	_, _, g1Gen, _ := bn254.Generators()
	return Point{p: g1Gen}
}

// G returns the curve's fixed base generator.
func G() Point {
	return generatorG
}

// Identity returns the group identity O (point at infinity).
func Identity() Point {
	var p bn254.G1Affine
	p.SetInfinity()
	return Point{p: p}
}

// Add returns a + b.
func Add(a, b Point) Point {
	var out bn254.G1Affine
	out.Add(&a.p, &b.p)
	return Point{p: out}
}

// Negate returns -a, the additive inverse.
func Negate(a Point) Point {
	var out bn254.G1Affine
	out.Neg(&a.p)
	return Point{p: out}
}

// Multiply returns s*P.
func Multiply(s Scalar, p Point) Point {
	var out bn254.G1Affine
	out.ScalarMultiplication(&p.p, s.BigInt())
	return Point{p: out}
}

// Equal reports whether a and b are the same curve point.
func (a Point) Equal(b Point) bool {
	return a.p.Equal(&b.p)
}

// IsIdentity reports whether a is the group identity.
func (a Point) IsIdentity() bool {
	return a.p.IsInfinity()
}

// X returns the affine x-coordinate as a FieldElem. Calling this on the
// identity point yields the zero element, matching gnark-crypto's
// representation of infinity as (0, 0) in affine coordinates.
func (a Point) X() FieldElem {
	x := a.p.X
	return FieldElem{v: x}
}

// Y returns the affine y-coordinate as a FieldElem.
func (a Point) Y() FieldElem {
	y := a.p.Y
	return FieldElem{v: y}
}

// Bytes returns the compressed encoding of the point.
func (a Point) Bytes() []byte {
	b := a.p.Bytes()
	return b[:]
}

// PointFromBytes decodes a compressed point produced by Bytes.
func PointFromBytes(b []byte) (Point, error) {
	var out bn254.G1Affine
	if _, err := out.SetBytes(b); err != nil {
		return Point{}, err
	}
	return Point{p: out}, nil
}

// MarshalJSON encodes a as a hex string of its compressed bytes.
func (a Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(a.Bytes()))
}

// UnmarshalJSON decodes a hex string produced by MarshalJSON.
func (a *Point) UnmarshalJSON(data []byte) error {
	var h string
	if err := json.Unmarshal(data, &h); err != nil {
		return err
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return err
	}
	v, err := PointFromBytes(b)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
