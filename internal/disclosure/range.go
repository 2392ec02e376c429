// Package disclosure implements optional compliance disclosures attached to
// a transaction output: real zk-SNARK range proofs (via gnark/Groth16) that
// an output's value lies within a disclosed range without revealing the
// value itself. This sits entirely outside the core mint/burn proofs — the
// core's proofs are deliberately transparent (they reveal their witness in
// full), and this package is where genuine zero-knowledge belongs instead.
package disclosure

import (
	"context"
	"errors"
	"sync"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
)

// Errors returned by Manager.
var (
	ErrNotCompiled     = errors.New("disclosure: circuit not compiled")
	ErrValueOutOfRange = errors.New("disclosure: value is outside the disclosed range")
	ErrProofGeneration = errors.New("disclosure: proof generation failed")
)

// RangeCircuit proves MinValue <= Value <= MaxValue for a hidden Value,
// without constraining Value to any particular commitment scheme — the
// binding to a transaction output's Pedersen commitment is the caller's
// responsibility (see Manager.Prove).
type RangeCircuit struct {
	MinValue frontend.Variable `gnark:",public"`
	MaxValue frontend.Variable `gnark:",public"`

	Value frontend.Variable
}

// Define implements the range constraint.
func (c *RangeCircuit) Define(api frontend.API) error {
	api.AssertIsLessOrEqual(c.MinValue, c.Value)
	api.AssertIsLessOrEqual(c.Value, c.MaxValue)
	return nil
}

// Manager owns the compiled range circuit and its Groth16 keys. A single
// Manager is shared by every range disclosure a node issues or checks,
// since the circuit shape never depends on the range bounds themselves.
type Manager struct {
	mu sync.RWMutex

	r1cs frontend.CompiledConstraintSystem
	pk   groth16.ProvingKey
	vk   groth16.VerifyingKey
}

// NewManager returns a Manager with no circuit compiled yet; call Compile
// once before Prove or Verify.
func NewManager() *Manager {
	return &Manager{}
}

// Compile builds the R1CS for RangeCircuit and runs the Groth16 trusted
// setup. In a production deployment the resulting keys would be generated
// once via an MPC ceremony and distributed, not regenerated locally; this
// is the didactic stand-in the spec calls for.
func (m *Manager) Compile() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	circuit := &RangeCircuit{}
	cs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, circuit)
	if err != nil {
		return err
	}

	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		return err
	}

	m.r1cs = cs
	m.pk = pk
	m.vk = vk
	return nil
}

// RangeProof is a serialized Groth16 proof that some hidden value lies in
// [MinValue, MaxValue]. MinValue/MaxValue are not just labels — Verify
// rebuilds the public witness from them, so a caller who changes them is
// changing what gets checked, not just how the proof is described.
type RangeProof struct {
	MinValue uint64
	MaxValue uint64
	Proof    []byte
}

// Prove constructs a RangeProof that value lies in [min, max]. Returns
// ErrValueOutOfRange before touching the circuit if that isn't true —
// there is no point spending a Groth16 proving run on a false statement.
func (m *Manager) Prove(ctx context.Context, value, min, max uint64) (*RangeProof, error) {
	if value < min || value > max {
		return nil, ErrValueOutOfRange
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.r1cs == nil {
		return nil, ErrNotCompiled
	}

	assignment := &RangeCircuit{
		MinValue: min,
		MaxValue: max,
		Value:    value,
	}
	w, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return nil, err
	}

	proof, err := groth16.Prove(m.r1cs, m.pk, w)
	if err != nil {
		return nil, ErrProofGeneration
	}
	proofBytes := proof.MarshalBinary()

	return &RangeProof{
		MinValue: min,
		MaxValue: max,
		Proof:    proofBytes,
	}, nil
}

// Verify checks a RangeProof against its own claimed bounds, rebuilding the
// public witness from rp.MinValue/rp.MaxValue rather than trusting a
// serialized copy — so tampering with the claimed bounds changes what gets
// verified.
func (m *Manager) Verify(ctx context.Context, rp *RangeProof) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.vk == nil {
		return false, ErrNotCompiled
	}

	proof := groth16.NewProof(ecc.BN254)
	if err := proof.UnmarshalBinary(rp.Proof); err != nil {
		return false, err
	}

	assignment := &RangeCircuit{MinValue: rp.MinValue, MaxValue: rp.MaxValue}
	w, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return false, err
	}

	if err := groth16.Verify(proof, m.vk, w); err != nil {
		return false, nil
	}
	return true, nil
}
