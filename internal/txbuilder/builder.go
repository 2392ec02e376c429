package txbuilder

import (
	"github.com/veilcoin/core/internal/model"
	"github.com/veilcoin/core/internal/proof"
	"github.com/veilcoin/core/internal/tx"
	"github.com/veilcoin/core/pkg/curve"
	"github.com/veilcoin/core/pkg/schnorr"
)

// TransactionBuilder accumulates clear inputs, shielded inputs and outputs,
// and on Build produces a fully signed Transaction. Not safe for concurrent
// mutation; distinct builders are independent.
type TransactionBuilder struct {
	clearInputs []ClearInputSpec
	inputs      []ShieldedInputSpec
	outputs     []OutputSpec
}

// New returns an empty TransactionBuilder.
func New() *TransactionBuilder {
	return &TransactionBuilder{}
}

// AddClearInput queues a transparent input to spend.
func (b *TransactionBuilder) AddClearInput(value uint64, tokenID curve.FieldElem, signatureSecret curve.Scalar) {
	b.clearInputs = append(b.clearInputs, ClearInputSpec{
		Value:           value,
		TokenID:         tokenID,
		SignatureSecret: signatureSecret,
	})
}

// AddInput queues a shielded input — an owned note known to be a member of
// allCoins — to spend.
func (b *TransactionBuilder) AddInput(allCoins model.CoinSet, secret curve.Scalar, note model.Note) {
	b.inputs = append(b.inputs, ShieldedInputSpec{
		AllCoins: allCoins,
		Secret:   secret,
		Note:     note,
	})
}

// AddOutput queues a new output to mint.
func (b *TransactionBuilder) AddOutput(value uint64, tokenID curve.FieldElem, recipientPublic curve.Point, depends, attrs curve.FieldElem) {
	b.outputs = append(b.outputs, OutputSpec{
		Value:           value,
		TokenID:         tokenID,
		RecipientPublic: recipientPublic,
		Depends:         depends,
		Attrs:           attrs,
	})
}

// Build runs the six-step build algorithm and returns a fully signed
// Transaction. Fails only if there are no queued outputs (I6); every other
// step is infallible given a working RNG.
func (b *TransactionBuilder) Build() (*tx.Transaction, error) {
	if len(b.outputs) == 0 {
		return nil, tx.ErrEmptyOutputs
	}

	txn := &tx.Transaction{}

	// Step 1: a single token blind shared by every clear input, shielded
	// input and output in this transaction. Shielded inputs take only their
	// value blind from the spent note; their burn proofs use this token blind.
	tokenBlind, err := curve.RandomScalar()
	if err != nil {
		return nil, err
	}

	// Step 2: clear inputs.
	for _, spec := range b.clearInputs {
		valueBlind, err := curve.RandomScalar()
		if err != nil {
			return nil, err
		}
		txn.ClearInputs = append(txn.ClearInputs, tx.TxClearInput{
			Value:           spec.Value,
			TokenID:         spec.TokenID,
			ValueBlind:      valueBlind,
			TokenBlind:      tokenBlind,
			SignaturePublic: curve.Multiply(spec.SignatureSecret, curve.G()),
		})
	}

	// Step 3: shielded inputs. Each burn proof is built over the spent
	// note's own value_blind rather than a fresh one — the note's blind is
	// carried forward, not re-randomized (see spec OQ-1; this is accepted
	// behavior, not a bug to fix here).
	inputSigSecrets := make([]curve.Scalar, 0, len(b.inputs))
	for _, spec := range b.inputs {
		sigSecret, err := curve.RandomScalar()
		if err != nil {
			return nil, err
		}
		inputSigSecrets = append(inputSigSecrets, sigSecret)

		note := spec.Note
		bp := proof.NewBurnProof(proof.BurnWitness{
			Value:           note.Value,
			TokenID:         note.TokenID,
			ValueBlind:      note.ValueBlind,
			TokenBlind:      tokenBlind,
			Serial:          note.Serial,
			CoinBlind:       note.CoinBlind,
			Secret:          spec.Secret,
			Depends:         note.Depends,
			Attrs:           note.Attrs,
			AllCoins:        spec.AllCoins,
			SignatureSecret: sigSecret,
		})

		txn.Inputs = append(txn.Inputs, tx.TxInput{
			BurnProof: bp,
			Revealed:  bp.Reveal(),
		})
	}

	// Step 4: outputs — value-balance closure. Bc is the sum of clear
	// input value blinds, Bi the sum of spent notes' own value blinds.
	var bc, bi curve.Scalar
	for _, in := range txn.ClearInputs {
		bc = bc.Add(in.ValueBlind)
	}
	for _, spec := range b.inputs {
		bi = bi.Add(spec.Note.ValueBlind)
	}

	outputBlinds := make([]curve.Scalar, 0, len(b.outputs))
	for i := range b.outputs {
		var blind curve.Scalar
		if i == len(b.outputs)-1 {
			blind = remainderBlind(bc, bi, outputBlinds)
		} else {
			var err error
			blind, err = curve.RandomScalar()
			if err != nil {
				return nil, err
			}
		}
		outputBlinds = append(outputBlinds, blind)
	}

	// Step 5: output notes and mint proofs.
	for i, spec := range b.outputs {
		serial, err := curve.RandomBase()
		if err != nil {
			return nil, err
		}
		coinBlind, err := curve.RandomBase()
		if err != nil {
			return nil, err
		}

		note := model.Note{
			Serial:     serial,
			Value:      spec.Value,
			TokenID:    spec.TokenID,
			CoinBlind:  coinBlind,
			ValueBlind: outputBlinds[i],
			TokenBlind: tokenBlind,
			Depends:    spec.Depends,
			Attrs:      spec.Attrs,
		}

		mp := proof.NewMintProof(proof.MintWitness{
			Value:           note.Value,
			TokenID:         note.TokenID,
			ValueBlind:      note.ValueBlind,
			TokenBlind:      note.TokenBlind,
			Serial:          note.Serial,
			CoinBlind:       note.CoinBlind,
			RecipientPublic: spec.RecipientPublic,
			Depends:         note.Depends,
			Attrs:           note.Attrs,
		})
		revealed := mp.Reveal()
		if !mp.Verify(revealed) {
			panic("txbuilder: freshly minted output failed its own proof's self-check")
		}

		txn.Outputs = append(txn.Outputs, tx.TxOutput{
			MintProof: mp,
			Revealed:  revealed,
			EncNote:   note,
		})
	}

	// Step 6: sign the unsigned transaction body.
	msg := txn.PartialEncode()

	for i, spec := range b.clearInputs {
		sig, err := schnorr.Sign(msg, spec.SignatureSecret)
		if err != nil {
			return nil, err
		}
		txn.ClearInputs[i].Signature = sig
	}
	for i, sigSecret := range inputSigSecrets {
		sig, err := schnorr.Sign(msg, sigSecret)
		if err != nil {
			return nil, err
		}
		txn.Inputs[i].Signature = sig
	}

	return txn, nil
}

// remainderBlind computes the value blind that makes the homomorphic sum of
// blinding factors collapse to zero: the total of clear and shielded input
// blinds, minus every output blind chosen so far.
func remainderBlind(bc, bi curve.Scalar, outputBlinds []curve.Scalar) curve.Scalar {
	total := bc.Add(bi)
	for _, b := range outputBlinds {
		total = total.Sub(b)
	}
	return total
}
