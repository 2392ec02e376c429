// Package tx defines the finalized, signed Transaction value object and its
// multi-step verification gate.
package tx

import (
	"github.com/veilcoin/core/internal/model"
	"github.com/veilcoin/core/internal/proof"
	"github.com/veilcoin/core/pkg/curve"
	"github.com/veilcoin/core/pkg/schnorr"
)

// TxClearInput is a finalized transparent input: its value and token id are
// public, so only the value/token blinds and the spending signature need to
// travel with it.
type TxClearInput struct {
	Value           uint64
	TokenID         curve.FieldElem
	ValueBlind      curve.Scalar
	TokenBlind      curve.Scalar
	SignaturePublic curve.Point
	Signature       schnorr.Sig
}

// TxInput is a finalized shielded input: a burn proof, its revealed public
// outputs, and the signature that proves ownership of the spent note.
type TxInput struct {
	BurnProof *proof.BurnProof
	Revealed  proof.BurnRevealed
	Signature schnorr.Sig
}

// TxOutput is a finalized output: a mint proof, its revealed public
// outputs, and the plaintext note (a production system would encrypt this
// to the recipient; that is out of scope here).
type TxOutput struct {
	MintProof *proof.MintProof
	Revealed  proof.MintRevealed
	EncNote   model.Note
}

// Transaction is the finalized, immutable result of a TransactionBuilder's
// Build call: an ordered list of clear inputs, shielded inputs and outputs.
type Transaction struct {
	ClearInputs []TxClearInput
	Inputs      []TxInput
	Outputs     []TxOutput
}
