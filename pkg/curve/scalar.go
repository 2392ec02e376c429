// Package curve implements the bn254-backed curve/field adapter that the
// transaction engine treats as an external collaborator: group arithmetic,
// scalar and base-field sampling, the Pedersen commitment, and the
// field-element hash used to derive coins and nullifiers.
package curve

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ErrInvalidScalar is returned when a scalar cannot be parsed from bytes.
var ErrInvalidScalar = errors.New("curve: invalid scalar encoding")

// Scalar is an element of the bn254 scalar field (the group order), used for
// values, blinding factors and signing keys.
type Scalar struct {
	v fr.Element
}

// RandomScalar samples a uniform scalar.
func RandomScalar() (Scalar, error) {
	var e fr.Element
	if _, err := e.SetRandom(); err != nil {
		return Scalar{}, err
	}
	return Scalar{v: e}, nil
}

// ScalarFromUint64 lifts a small non-negative integer (e.g. a Value) into the
// scalar field.
func ScalarFromUint64(v uint64) Scalar {
	var e fr.Element
	e.SetUint64(v)
	return Scalar{v: e}
}

// ScalarFromBigInt reduces an arbitrary integer into the scalar field.
func ScalarFromBigInt(v *big.Int) Scalar {
	var e fr.Element
	e.SetBigInt(v)
	return Scalar{v: e}
}

// BigInt returns the canonical big.Int representation of s.
func (s Scalar) BigInt() *big.Int {
	var out big.Int
	s.v.BigInt(&out)
	return &out
}

// Add returns s + other mod the scalar order.
func (s Scalar) Add(other Scalar) Scalar {
	var out fr.Element
	out.Add(&s.v, &other.v)
	return Scalar{v: out}
}

// Sub returns s - other mod the scalar order.
func (s Scalar) Sub(other Scalar) Scalar {
	var out fr.Element
	out.Sub(&s.v, &other.v)
	return Scalar{v: out}
}

// Neg returns -s mod the scalar order.
func (s Scalar) Neg() Scalar {
	var out fr.Element
	out.Neg(&s.v)
	return Scalar{v: out}
}

// Mul returns s * other mod the scalar order.
func (s Scalar) Mul(other Scalar) Scalar {
	var out fr.Element
	out.Mul(&s.v, &other.v)
	return Scalar{v: out}
}

// Equal reports whether s and other represent the same scalar.
func (s Scalar) Equal(other Scalar) bool {
	return s.v.Equal(&other.v)
}

// IsZero reports whether s is the additive identity.
func (s Scalar) IsZero() bool {
	return s.v.IsZero()
}

// Bytes returns the canonical 32-byte big-endian encoding of s.
func (s Scalar) Bytes() []byte {
	b := s.v.Bytes()
	return b[:]
}

// ScalarFromBytes parses a 32-byte big-endian encoding produced by Bytes.
func ScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != fr.Bytes {
		return Scalar{}, ErrInvalidScalar
	}
	var e fr.Element
	e.SetBytes(b)
	return Scalar{v: e}, nil
}

// ScalarOrder returns the order of the scalar field (the group order).
func ScalarOrder() *big.Int {
	return fr.Modulus()
}

// MarshalJSON encodes s as a hex string of its canonical bytes.
func (s Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(s.Bytes()))
}

// UnmarshalJSON decodes a hex string produced by MarshalJSON.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	var h string
	if err := json.Unmarshal(data, &h); err != nil {
		return err
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return err
	}
	v, err := ScalarFromBytes(b)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
