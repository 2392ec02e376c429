package curve

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
)

// ErrInvalidFieldElem is returned when a FieldElem cannot be parsed from bytes.
var ErrInvalidFieldElem = errors.New("curve: invalid field element encoding")

// FieldElem is an element of the bn254 base field — the field curve points'
// coordinates live in. TokenId, CoinCommit and Nullifier are all FieldElem.
type FieldElem struct {
	v fp.Element
}

// RandomBase samples a uniform base-field element.
func RandomBase() (FieldElem, error) {
	var e fp.Element
	if _, err := e.SetRandom(); err != nil {
		return FieldElem{}, err
	}
	return FieldElem{v: e}, nil
}

// FieldElemFromUint64 lifts a small integer into the base field.
func FieldElemFromUint64(v uint64) FieldElem {
	var e fp.Element
	e.SetUint64(v)
	return FieldElem{v: e}
}

// FieldElemFromBigInt reduces an arbitrary integer into the base field.
func FieldElemFromBigInt(v *big.Int) FieldElem {
	var e fp.Element
	e.SetBigInt(v)
	return FieldElem{v: e}
}

// BigInt returns the canonical big.Int representation of f.
func (f FieldElem) BigInt() *big.Int {
	var out big.Int
	f.v.BigInt(&out)
	return &out
}

// ToScalar reduces f, taken as an integer, into the scalar field. Token ids
// are minted as FieldElem but spent as the Scalar exponent of a Pedersen
// commitment — this is the bridge the spec's didactic model assumes by using
// one shared notion of "field element" for both roles.
func (f FieldElem) ToScalar() Scalar {
	return ScalarFromBigInt(f.BigInt())
}

// ToFieldElem reduces s, taken as an integer, into the base field.
func (s Scalar) ToFieldElem() FieldElem {
	return FieldElemFromBigInt(s.BigInt())
}

// Equal reports whether f and other represent the same field element.
func (f FieldElem) Equal(other FieldElem) bool {
	return f.v.Equal(&other.v)
}

// IsZero reports whether f is the additive identity.
func (f FieldElem) IsZero() bool {
	return f.v.IsZero()
}

// Bytes returns the canonical 32-byte big-endian encoding of f.
func (f FieldElem) Bytes() []byte {
	b := f.v.Bytes()
	return b[:]
}

// FieldElemFromBytes parses a 32-byte big-endian encoding produced by Bytes.
func FieldElemFromBytes(b []byte) (FieldElem, error) {
	if len(b) != fp.Bytes {
		return FieldElem{}, ErrInvalidFieldElem
	}
	var e fp.Element
	e.SetBytes(b)
	return FieldElem{v: e}, nil
}

// BaseModulus returns the modulus of the base field.
func BaseModulus() *big.Int {
	return fp.Modulus()
}

// MarshalJSON encodes f as a hex string of its canonical bytes.
func (f FieldElem) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(f.Bytes()))
}

// UnmarshalJSON decodes a hex string produced by MarshalJSON.
func (f *FieldElem) UnmarshalJSON(data []byte) error {
	var h string
	if err := json.Unmarshal(data, &h); err != nil {
		return err
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return err
	}
	v, err := FieldElemFromBytes(b)
	if err != nil {
		return err
	}
	*f = v
	return nil
}
