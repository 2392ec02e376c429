package coinset

import (
	"testing"

	"github.com/veilcoin/core/pkg/curve"
)

func mustField(t *testing.T) curve.FieldElem {
	t.Helper()
	f, err := curve.RandomBase()
	if err != nil {
		t.Fatalf("RandomBase: %v", err)
	}
	return f
}

func TestMemoryCoinSetContainsAfterAdd(t *testing.T) {
	s := NewMemoryCoinSet(4)
	coin := mustField(t)

	if ok, _ := s.Contains(coin); ok {
		t.Error("a coin set should not contain a coin before it is added")
	}

	if _, err := s.AddCommitment(coin); err != nil {
		t.Fatalf("AddCommitment: %v", err)
	}

	if ok, _ := s.Contains(coin); !ok {
		t.Error("a coin set should contain a coin after it is added")
	}
}

func TestMemoryCoinSetDigestChangesOnInsert(t *testing.T) {
	s := NewMemoryCoinSet(4)
	before := s.Digest()

	if _, err := s.AddCommitment(mustField(t)); err != nil {
		t.Fatalf("AddCommitment: %v", err)
	}
	after := s.Digest()

	if before.Equal(after) {
		t.Error("the digest should change after inserting a new coin")
	}
}

func TestMemoryCoinSetRejectsUnrelatedCoin(t *testing.T) {
	s := NewMemoryCoinSet(4)
	if _, err := s.AddCommitment(mustField(t)); err != nil {
		t.Fatalf("AddCommitment: %v", err)
	}

	if ok, _ := s.Contains(mustField(t)); ok {
		t.Error("a coin set should not report membership for an unrelated coin")
	}
}

func TestMemoryCoinSetFull(t *testing.T) {
	s := NewMemoryCoinSet(2) // max 4 leaves

	for i := 0; i < 4; i++ {
		if _, err := s.AddCommitment(mustField(t)); err != nil {
			t.Fatalf("AddCommitment %d: %v", i, err)
		}
	}

	if _, err := s.AddCommitment(mustField(t)); err != ErrTreeFull {
		t.Errorf("expected ErrTreeFull once the tree is full, got %v", err)
	}
}
