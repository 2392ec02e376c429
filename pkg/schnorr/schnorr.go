// Package schnorr implements the signature primitive the transaction engine
// treats as an external collaborator (spec sign/verify over the same curve
// used for commitments).
package schnorr

import (
	"errors"

	"github.com/veilcoin/core/pkg/curve"
)

// ErrInvalidSignature is the package's error value for an invalid signature.
// Verify itself does not return it; it reports failure as false.
var ErrInvalidSignature = errors.New("schnorr: invalid signature")

// Sig is a Schnorr signature (R, s) over curve.Point / curve.Scalar.
type Sig struct {
	R curve.Point
	S curve.Scalar
}

// Sign produces a randomized Schnorr signature of msg under sk.
func Sign(msg []byte, sk curve.Scalar) (Sig, error) {
	k, err := curve.RandomScalar()
	if err != nil {
		return Sig{}, err
	}
	r := curve.Multiply(k, curve.G())
	pk := curve.Multiply(sk, curve.G())

	e := challenge(r, pk, msg)
	s := k.Add(e.Mul(sk))

	return Sig{R: r, S: s}, nil
}

// Verify reports whether sig is a valid signature of msg under pk.
func Verify(msg []byte, sig Sig, pk curve.Point) bool {
	e := challenge(sig.R, pk, msg)

	// Check s*G == R + e*pk.
	lhs := curve.Multiply(sig.S, curve.G())
	rhs := curve.Add(sig.R, curve.Multiply(e, pk))
	return lhs.Equal(rhs)
}

// challenge computes e = H(R.x, R.y, pk.x, pk.y, H(msg)) reduced to a scalar.
func challenge(r, pk curve.Point, msg []byte) curve.Scalar {
	digest := curve.HashBytes(msg)
	e := curve.FieldHash(r.X(), r.Y(), pk.X(), pk.Y(), digest)
	return e.ToScalar()
}
