package txbuilder

import (
	"github.com/veilcoin/core/internal/tx"
	"github.com/veilcoin/core/pkg/curve"
)

// Spec is the on-disk JSON shape `veilctl build` reads: a transaction made
// only of clear inputs and shielded outputs. A shielded input needs a live
// CoinSet to prove its note's membership against (see ShieldedInputSpec),
// and no static JSON file can hold a Merkle accumulator or a database
// handle — so Spec covers the mint side of the protocol, the one built
// entirely from values a file can express.
type Spec struct {
	ClearInputs []ClearInputSpecJSON `json:"clear_inputs"`
	Outputs     []OutputSpecJSON     `json:"outputs"`
}

// ClearInputSpecJSON is the JSON shape of a ClearInputSpec.
type ClearInputSpecJSON struct {
	Value           uint64          `json:"value"`
	TokenID         curve.FieldElem `json:"token_id"`
	SignatureSecret curve.Scalar    `json:"signature_secret"`
}

// OutputSpecJSON is the JSON shape of an OutputSpec.
type OutputSpecJSON struct {
	Value           uint64          `json:"value"`
	TokenID         curve.FieldElem `json:"token_id"`
	RecipientPublic curve.Point     `json:"recipient_public"`
	Depends         curve.FieldElem `json:"depends"`
	Attrs           curve.FieldElem `json:"attrs"`
}

// BuildFromSpec runs spec through a fresh TransactionBuilder, exactly as a
// caller would by hand, and finalizes it.
func BuildFromSpec(spec Spec) (*tx.Transaction, error) {
	b := New()
	for _, in := range spec.ClearInputs {
		b.AddClearInput(in.Value, in.TokenID, in.SignatureSecret)
	}
	for _, out := range spec.Outputs {
		b.AddOutput(out.Value, out.TokenID, out.RecipientPublic, out.Depends, out.Attrs)
	}
	return b.Build()
}
