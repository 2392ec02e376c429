package schnorr

import (
	"testing"

	"github.com/veilcoin/core/pkg/curve"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	sk, err := curve.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	pk := curve.Multiply(sk, curve.G())

	msg := []byte("veilcoin transaction body")
	sig, err := Sign(msg, sk)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if !Verify(msg, sig, pk) {
		t.Error("a valid signature should verify")
	}
}

func TestVerifyRejectsWrongMessage(t *testing.T) {
	sk, err := curve.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	pk := curve.Multiply(sk, curve.G())

	sig, err := Sign([]byte("original"), sk)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if Verify([]byte("tampered"), sig, pk) {
		t.Error("signature over a different message should not verify")
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	sk, err := curve.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	otherSk, err := curve.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	otherPk := curve.Multiply(otherSk, curve.G())

	msg := []byte("veilcoin transaction body")
	sig, err := Sign(msg, sk)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if Verify(msg, sig, otherPk) {
		t.Error("signature should not verify against the wrong public key")
	}
}
