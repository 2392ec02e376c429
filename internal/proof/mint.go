// Package proof implements the two didactic proof objects the transaction
// engine attaches to outputs and shielded inputs. Neither proof hides its
// witness — both reveal it in full; they exist to give the builder and
// verifier a single, self-consistent place to compute and recheck the
// public commitments a proof is supposed to stand behind.
package proof

import "github.com/veilcoin/core/pkg/curve"

// MintWitness is everything a MintProof needs: the plaintext output note
// plus the recipient's public key.
type MintWitness struct {
	Value           uint64
	TokenID         curve.FieldElem
	ValueBlind      curve.Scalar
	TokenBlind      curve.Scalar
	Serial          curve.FieldElem
	CoinBlind       curve.FieldElem
	RecipientPublic curve.Point
	Depends         curve.FieldElem
	Attrs           curve.FieldElem
}

// MintRevealed is the public projection of a MintProof: what a verifier
// checks a claimed mint against.
type MintRevealed struct {
	Coin        curve.FieldElem
	ValueCommit curve.Point
	TokenCommit curve.Point
}

// Equal reports whether two revealed mints are structurally identical.
func (r MintRevealed) Equal(other MintRevealed) bool {
	return r.Coin.Equal(other.Coin) &&
		r.ValueCommit.Equal(other.ValueCommit) &&
		r.TokenCommit.Equal(other.TokenCommit)
}

// MintProof asserts that a freshly minted coin commitment is consistent with
// a claimed value commitment and token commitment.
type MintProof struct {
	w MintWitness
}

// NewMintProof constructs a MintProof over witness w.
func NewMintProof(w MintWitness) *MintProof {
	return &MintProof{w: w}
}

// Reveal computes the public outputs another party checks a MintProof
// against: the coin commitment and the value/token Pedersen commitments.
func (p *MintProof) Reveal() MintRevealed {
	w := p.w
	coin := curve.FieldHash(
		curve.FieldElemFromBigInt(curve.BaseModulus()),
		w.RecipientPublic.X(),
		w.RecipientPublic.Y(),
		curve.FieldElemFromUint64(w.Value),
		w.TokenID,
		w.Serial,
		w.CoinBlind,
		w.Depends,
		w.Attrs,
	)

	return MintRevealed{
		Coin:        coin,
		ValueCommit: curve.Commit(curve.ScalarFromUint64(w.Value), w.ValueBlind),
		TokenCommit: curve.Commit(w.TokenID.ToScalar(), w.TokenBlind),
	}
}

// Verify reports whether claim matches what Reveal computes from the
// witness. There are deliberately no other checks: range proofs and
// recipient validity are outside the scope of this didactic proof.
func (p *MintProof) Verify(claim MintRevealed) bool {
	return p.Reveal().Equal(claim)
}
