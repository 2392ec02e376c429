package proof

import (
	"testing"

	"github.com/veilcoin/core/pkg/curve"
)

// fakeCoinSet is a minimal CoinSet for testing Burn proofs in isolation.
type fakeCoinSet struct {
	members map[string]bool
	digest  curve.FieldElem
}

func newFakeCoinSet() *fakeCoinSet {
	return &fakeCoinSet{members: make(map[string]bool), digest: curve.FieldElemFromUint64(1)}
}

func (s *fakeCoinSet) add(coin curve.FieldElem) {
	s.members[string(coin.Bytes())] = true
}

func (s *fakeCoinSet) Contains(coin curve.FieldElem) (bool, error) {
	return s.members[string(coin.Bytes())], nil
}

func (s *fakeCoinSet) Digest() curve.FieldElem {
	return s.digest
}

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

func TestMintProofRevealVerifies(t *testing.T) {
	recipientSecret := mustScalar(t)
	w := MintWitness{
		Value:           1000,
		TokenID:         mustField(t),
		ValueBlind:      mustScalar(t),
		TokenBlind:      mustScalar(t),
		Serial:          mustField(t),
		CoinBlind:       mustField(t),
		RecipientPublic: curve.Multiply(recipientSecret, curve.G()),
		Depends:         curve.FieldElemFromUint64(0),
		Attrs:           curve.FieldElemFromUint64(0),
	}

	p := NewMintProof(w)
	revealed := p.Reveal()

	if !p.Verify(revealed) {
		t.Error("a freshly revealed mint proof should verify against its own revealed claim")
	}
}

func TestMintProofRejectsTamperedClaim(t *testing.T) {
	w := MintWitness{
		Value:           1000,
		TokenID:         mustField(t),
		ValueBlind:      mustScalar(t),
		TokenBlind:      mustScalar(t),
		Serial:          mustField(t),
		CoinBlind:       mustField(t),
		RecipientPublic: curve.Multiply(mustScalar(t), curve.G()),
	}

	p := NewMintProof(w)
	claim := p.Reveal()
	claim.Coin = curve.FieldElemFromUint64(999999)

	if p.Verify(claim) {
		t.Error("a mint proof should not verify against a tampered claim")
	}
}

func TestBurnProofRequiresMembership(t *testing.T) {
	secret := mustScalar(t)
	sigSecret := mustScalar(t)
	coins := newFakeCoinSet()

	w := BurnWitness{
		Value:           500,
		TokenID:         mustField(t),
		ValueBlind:      mustScalar(t),
		TokenBlind:      mustScalar(t),
		Serial:          mustField(t),
		CoinBlind:       mustField(t),
		Secret:          secret,
		AllCoins:        coins,
		SignatureSecret: sigSecret,
	}

	p := NewBurnProof(w)
	revealed := p.Reveal()

	if p.Verify(revealed) {
		t.Error("a burn proof should fail verification when its coin is not a member of the coin set")
	}

	pk := curve.Multiply(secret, curve.G())
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
	coins.add(coin)

	if !p.Verify(revealed) {
		t.Error("a burn proof should verify once its coin is a member of the coin set")
	}
}

func TestBurnRevealedEqualComparesCoinSetByDigest(t *testing.T) {
	a := newFakeCoinSet()
	b := newFakeCoinSet()
	b.digest = curve.FieldElemFromUint64(2)

	r1 := BurnRevealed{Nullifier: mustField(t), AllCoins: a}
	r2 := r1
	r2.AllCoins = b

	if r1.Equal(r2) {
		t.Error("BurnRevealed.Equal should distinguish coin sets with different digests")
	}
}
