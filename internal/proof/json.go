package proof

import (
	"encoding/json"
	"errors"
)

// ErrBurnProofNotSerializable is returned by BurnProof's JSON methods.
// BurnWitness.AllCoins is a live CoinSet (a Merkle accumulator or a database
// handle), not a value a static JSON file can hold, so a BurnProof has no
// faithful on-disk representation; a shielded-spend transaction must stay
// in memory between build and verify rather than round-trip through JSON.
var ErrBurnProofNotSerializable = errors.New("proof: BurnProof cannot be JSON-encoded (AllCoins is not serializable)")

// MarshalJSON encodes the proof's witness directly — a MintProof is
// self-contained (no live collaborator like BurnProof's CoinSet), so its
// witness is all a caller needs to reconstruct and reverify it later.
func (p *MintProof) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.w)
}

// UnmarshalJSON decodes a witness produced by MarshalJSON.
func (p *MintProof) UnmarshalJSON(data []byte) error {
	var w MintWitness
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	p.w = w
	return nil
}

// MarshalJSON always fails; see ErrBurnProofNotSerializable.
func (p *BurnProof) MarshalJSON() ([]byte, error) {
	return nil, ErrBurnProofNotSerializable
}

// UnmarshalJSON always fails; see ErrBurnProofNotSerializable.
func (p *BurnProof) UnmarshalJSON(data []byte) error {
	return ErrBurnProofNotSerializable
}
