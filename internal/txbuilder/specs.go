// Package txbuilder implements the TransactionBuilder: the one place in
// this repo that arranges inputs and outputs so blinding factors balance to
// zero, mints notes with mint proofs, burns owned notes with burn proofs,
// and signs the result.
package txbuilder

import (
	"github.com/veilcoin/core/internal/model"
	"github.com/veilcoin/core/pkg/curve"
)

// ClearInputSpec is an ephemeral request to spend a transparent input,
// discarded once Build returns.
type ClearInputSpec struct {
	Value           uint64
	TokenID         curve.FieldElem
	SignatureSecret curve.Scalar
}

// ShieldedInputSpec is an ephemeral request to spend an owned shielded note.
// AllCoins is typed as model.CoinSet rather than proof.CoinSet here — a
// caller of this package's public API reaches for the shared model type, not
// proof's internally-scoped one; the two are structurally identical, so a
// coinset.MemoryCoinSet or coinset.PostgresCoinSet satisfies both without
// change, and Build passes AllCoins straight on into a proof.BurnWitness.
type ShieldedInputSpec struct {
	AllCoins model.CoinSet
	Secret   curve.Scalar
	Note     model.Note
}

// OutputSpec is an ephemeral request to mint a new output.
type OutputSpec struct {
	Value           uint64
	TokenID         curve.FieldElem
	RecipientPublic curve.Point
	Depends         curve.FieldElem
	Attrs           curve.FieldElem
}
