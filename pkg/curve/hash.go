package curve

import (
	"math/big"

	"golang.org/x/crypto/blake2b"
)

// FieldHash is the collision-resistant hash into the base field the proof
// objects use to derive coins and nullifiers (the spec's ff_hash). The hash
// adds no domain separation of its own; each call site fixes its positional
// arity, and several unrelated call sites share the two-argument form
// (nullifiers, commitment-tree nodes, the Postgres digest chain).
func FieldHash(xs ...FieldElem) FieldElem {
	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 only fails for an invalid key length, and we pass none.
		panic("curve: blake2b.New256 failed unexpectedly: " + err.Error())
	}
	for _, x := range xs {
		b := x.Bytes()
		h.Write(b)
	}
	sum := h.Sum(nil)
	return FieldElemFromBigInt(new(big.Int).SetBytes(sum))
}

// HashBytes reduces an arbitrary-length byte string into the base field.
// Unlike FieldHash it takes raw bytes rather than positional field elements;
// it is used where the input is a message or encoding rather than a fixed
// tuple of witness components (e.g. the Schnorr signature challenge).
func HashBytes(data []byte) FieldElem {
	sum := blake2b.Sum256(data)
	return FieldElemFromBigInt(new(big.Int).SetBytes(sum[:]))
}

// domainScalar reduces a blake2b digest of label into the scalar field, used
// to derive fixed secondary generators with no caller-known discrete log
// relation to G (e.g. the Pedersen H generator below).
func domainScalar(label string) Scalar {
	sum := blake2b.Sum256([]byte(label))
	return ScalarFromBigInt(new(big.Int).SetBytes(sum[:]))
}
