// Package model holds the semantic types shared across the proof, builder
// and transaction packages, so none of them need to depend on each other
// just to agree on what a Note or a CoinSet is.
package model

import "github.com/veilcoin/core/pkg/curve"

// Value is a non-negative amount, small enough to fit in a curve.Scalar.
type Value = uint64

// TokenId identifies a token type. A transaction carries exactly one.
type TokenId = curve.FieldElem

// CoinCommit is the hash-binding commitment of an output note's full
// witness (what MintProof.Reveal calls Coin).
type CoinCommit = curve.FieldElem

// Nullifier is the deterministic function of a spent note's secret and
// serial, revealed by BurnProof.Reveal to prevent double-spends.
type Nullifier = curve.FieldElem

// Note is the plaintext record behind a shielded output: what the builder
// creates when minting, and what a wallet later spends when burning.
type Note struct {
	Serial     curve.FieldElem
	Value      Value
	TokenID    TokenId
	CoinBlind  curve.FieldElem
	ValueBlind curve.Scalar
	TokenBlind curve.Scalar
	Depends    curve.FieldElem
	Attrs      curve.FieldElem
}

// CoinSet is the opaque "set of currently-committed coin commitments" the
// core consumes — a Merkle root, an explicit set, whatever a concrete
// implementation chooses. The core only needs membership and a stable
// digest for structural equality of two snapshots (see internal/coinset).
type CoinSet interface {
	// Contains reports whether coin has been committed in this set.
	Contains(coin CoinCommit) (bool, error)
	// Digest returns a value that uniquely identifies this snapshot of the
	// set, compared for equality instead of doing an element-wise set
	// comparison (the spec's guidance for Merkle-style coin sets).
	Digest() curve.FieldElem
}
