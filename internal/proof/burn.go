package proof

import "github.com/veilcoin/core/pkg/curve"

// CoinSet is the membership predicate a BurnProof checks its coin against.
// Defined locally (rather than imported from internal/model) so this
// package has no dependency on the builder/transaction layer; any type
// satisfying this — including model.CoinSet — works here.
type CoinSet interface {
	Contains(coin curve.FieldElem) (bool, error)
	Digest() curve.FieldElem
}

// BurnWitness is everything a BurnProof needs: the note being spent, the
// spending secret, the coin set it must appear in, and the key that will
// co-sign the transaction on this input's behalf.
type BurnWitness struct {
	Value           uint64
	TokenID         curve.FieldElem
	ValueBlind      curve.Scalar
	TokenBlind      curve.Scalar
	Serial          curve.FieldElem
	CoinBlind       curve.FieldElem
	Secret          curve.Scalar
	Depends         curve.FieldElem
	Attrs           curve.FieldElem
	AllCoins        CoinSet
	SignatureSecret curve.Scalar
}

// BurnRevealed is the public projection of a BurnProof.
type BurnRevealed struct {
	Nullifier       curve.FieldElem
	ValueCommit     curve.Point
	TokenCommit     curve.Point
	AllCoins        CoinSet
	SignaturePublic curve.Point
}

// Equal reports whether two revealed burns are structurally identical. The
// two CoinSet snapshots compare by digest, not by element-wise membership —
// the right notion of equality for a Merkle-style set.
func (r BurnRevealed) Equal(other BurnRevealed) bool {
	return r.Nullifier.Equal(other.Nullifier) &&
		r.ValueCommit.Equal(other.ValueCommit) &&
		r.TokenCommit.Equal(other.TokenCommit) &&
		r.AllCoins.Digest().Equal(other.AllCoins.Digest()) &&
		r.SignaturePublic.Equal(other.SignaturePublic)
}

// BurnProof asserts that a note's coin commitment is a member of a coin set
// and reveals the nullifier, value commitment and token commitment that go
// with spending it.
type BurnProof struct {
	w BurnWitness
}

// NewBurnProof constructs a BurnProof over witness w.
func NewBurnProof(w BurnWitness) *BurnProof {
	return &BurnProof{w: w}
}

// Reveal computes the public outputs of spending this note: the nullifier,
// the value/token commitments, the coin set snapshot, and the signing key.
func (p *BurnProof) Reveal() BurnRevealed {
	w := p.w
	return BurnRevealed{
		Nullifier:       curve.FieldHash(w.Secret.ToFieldElem(), w.Serial),
		ValueCommit:     curve.Commit(curve.ScalarFromUint64(w.Value), w.ValueBlind),
		TokenCommit:     curve.Commit(w.TokenID.ToScalar(), w.TokenBlind),
		AllCoins:        w.AllCoins,
		SignaturePublic: curve.Multiply(w.SignatureSecret, curve.G()),
	}
}

// Verify reports whether claim matches this proof's witness: the note's
// coin must actually be a member of the claimed coin set, and every
// recomputed field must equal the corresponding field of claim.
func (p *BurnProof) Verify(claim BurnRevealed) bool {
	w := p.w

	pk := curve.Multiply(w.Secret, curve.G())
	coin := curve.FieldHash(
		curve.FieldElemFromBigInt(curve.BaseModulus()),
		pk.X(),
		pk.Y(),
		curve.FieldElemFromUint64(w.Value),
		w.TokenID,
		w.Serial,
		w.CoinBlind,
		w.Depends,
		w.Attrs,
	)

	member, err := w.AllCoins.Contains(coin)
	if err != nil || !member {
		return false
	}

	return p.Reveal().Equal(claim)
}
