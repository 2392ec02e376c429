package tx

import (
	"github.com/veilcoin/core/pkg/curve"
	"github.com/veilcoin/core/pkg/schnorr"
)

// Verify runs the four gates in order and short-circuits on the first
// failure, returning its reason. A transaction with zero outputs is
// rejected up front rather than indexing Outputs[0] in the token-commitment
// gate (spec OQ-3).
func (t *Transaction) Verify() (bool, error) {
	if len(t.Outputs) == 0 {
		return false, ErrEmptyOutputs
	}
	if !t.checkValueCommits() {
		return false, ErrValueCommitMismatch
	}
	if !t.checkProofs() {
		return false, ErrProofInvalid
	}
	if !t.checkTokenCommitments() {
		return false, ErrTokenMismatch
	}

	msg := t.PartialEncode()
	for _, in := range t.ClearInputs {
		if !schnorr.Verify(msg, in.Signature, in.SignaturePublic) {
			return false, ErrSignatureInvalid
		}
	}
	for _, in := range t.Inputs {
		if !schnorr.Verify(msg, in.Signature, in.Revealed.SignaturePublic) {
			return false, ErrSignatureInvalid
		}
	}

	return true, nil
}

// checkValueCommits verifies I1: the sum of clear and shielded input value
// commitments minus output value commitments collapses to the identity.
func (t *Transaction) checkValueCommits() bool {
	total := curve.Identity()

	for _, in := range t.ClearInputs {
		vc := curve.Commit(curve.ScalarFromUint64(in.Value), in.ValueBlind)
		total = curve.Add(total, vc)
	}
	for _, in := range t.Inputs {
		total = curve.Add(total, in.Revealed.ValueCommit)
	}
	for _, out := range t.Outputs {
		total = curve.Add(total, curve.Negate(out.Revealed.ValueCommit))
	}

	return total.Equal(curve.Identity())
}

// checkProofs verifies I7: every burn and mint proof is self-consistent
// with the revealed values it was finalized with.
func (t *Transaction) checkProofs() bool {
	for _, in := range t.Inputs {
		if !in.BurnProof.Verify(in.Revealed) {
			return false
		}
	}
	for _, out := range t.Outputs {
		if !out.MintProof.Verify(out.Revealed) {
			return false
		}
	}
	return true
}

// checkTokenCommitments verifies I2: every clear input, shielded input and
// output shares the same token commitment, anchored on the first output's.
func (t *Transaction) checkTokenCommitments() bool {
	anchor := t.Outputs[0].Revealed.TokenCommit

	for _, in := range t.ClearInputs {
		tc := curve.Commit(in.TokenID.ToScalar(), in.TokenBlind)
		if !tc.Equal(anchor) {
			return false
		}
	}
	for _, in := range t.Inputs {
		if !in.Revealed.TokenCommit.Equal(anchor) {
			return false
		}
	}
	for _, out := range t.Outputs {
		if !out.Revealed.TokenCommit.Equal(anchor) {
			return false
		}
	}

	return true
}
