package tx

import (
	"testing"

	"github.com/veilcoin/core/internal/proof"
	"github.com/veilcoin/core/pkg/curve"
	"github.com/veilcoin/core/pkg/schnorr"
)

func mustScalar(t *testing.T) curve.Scalar {
	t.Helper()
	s, err := curve.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	return s
}

func mustField(t *testing.T) curve.FieldElem {
	t.Helper()
	f, err := curve.RandomBase()
	if err != nil {
		t.Fatalf("RandomBase: %v", err)
	}
	return f
}

// buildSingleClearToShielded constructs a one clear-input, one-output
// transaction by hand (without txbuilder) so this package's tests don't
// depend on internal/txbuilder.
func buildSingleClearToShielded(t *testing.T, value uint64, tokenID curve.FieldElem) *Transaction {
	t.Helper()

	clearSecret := mustScalar(t)
	valueBlind := mustScalar(t)
	tokenBlind := mustScalar(t)

	recipientSecret := mustScalar(t)
	recipientPublic := curve.Multiply(recipientSecret, curve.G())

	mw := proof.MintWitness{
		Value:           value,
		TokenID:         tokenID,
		ValueBlind:      valueBlind,
		TokenBlind:      tokenBlind,
		Serial:          mustField(t),
		CoinBlind:       mustField(t),
		RecipientPublic: recipientPublic,
	}
	mp := proof.NewMintProof(mw)
	revealed := mp.Reveal()

	txn := &Transaction{
		ClearInputs: []TxClearInput{{
			Value:           value,
			TokenID:         tokenID,
			ValueBlind:      valueBlind,
			TokenBlind:      tokenBlind,
			SignaturePublic: curve.Multiply(clearSecret, curve.G()),
		}},
		Outputs: []TxOutput{{
			MintProof: mp,
			Revealed:  revealed,
		}},
	}

	msg := txn.PartialEncode()
	sig, err := schnorr.Sign(msg, clearSecret)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	txn.ClearInputs[0].Signature = sig

	return txn
}

func TestVerifyAcceptsBalancedTransaction(t *testing.T) {
	tokenID := mustField(t)
	txn := buildSingleClearToShielded(t, 1000, tokenID)

	ok, err := txn.Verify()
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !ok {
		t.Error("a correctly balanced, signed transaction should verify")
	}
}

func TestVerifyRejectsEmptyOutputs(t *testing.T) {
	txn := &Transaction{}

	ok, err := txn.Verify()
	if ok {
		t.Error("a transaction with no outputs should not verify")
	}
	if err != ErrEmptyOutputs {
		t.Errorf("expected ErrEmptyOutputs, got %v", err)
	}
}

func TestVerifyRejectsUnbalancedValue(t *testing.T) {
	tokenID := mustField(t)
	txn := buildSingleClearToShielded(t, 1000, tokenID)
	txn.ClearInputs[0].Value = 999 // now Outputs[0] claims 1000 but the clear commit covers 999

	ok, err := txn.Verify()
	if ok {
		t.Error("an unbalanced transaction should not verify")
	}
	if err != ErrValueCommitMismatch {
		t.Errorf("expected ErrValueCommitMismatch, got %v", err)
	}
}

func TestVerifyRejectsBadSignature(t *testing.T) {
	tokenID := mustField(t)
	txn := buildSingleClearToShielded(t, 1000, tokenID)

	other, err := curve.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	badSig, err := schnorr.Sign(txn.PartialEncode(), other)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	txn.ClearInputs[0].Signature = badSig

	ok, err := txn.Verify()
	if ok {
		t.Error("a transaction signed by the wrong key should not verify")
	}
	if err != ErrSignatureInvalid {
		t.Errorf("expected ErrSignatureInvalid, got %v", err)
	}
}

func TestVerifyRejectsTokenMismatch(t *testing.T) {
	tokenA := mustField(t)
	tokenB := mustField(t)

	txn := buildSingleClearToShielded(t, 1000, tokenA)
	txn.ClearInputs[0].TokenID = tokenB

	ok, err := txn.Verify()
	if ok {
		t.Error("a transaction with mismatched token ids should not verify")
	}
	if err != ErrValueCommitMismatch && err != ErrTokenMismatch {
		t.Errorf("expected a value-commit or token mismatch error, got %v", err)
	}
}

func TestPartialEncodeExcludesSignatures(t *testing.T) {
	tokenID := mustField(t)
	txn := buildSingleClearToShielded(t, 1000, tokenID)

	before := txn.PartialEncode()
	txn.ClearInputs[0].Signature.S = mustScalar(t)
	after := txn.PartialEncode()

	if string(before) != string(after) {
		t.Error("PartialEncode should not change when only a signature changes")
	}
}
