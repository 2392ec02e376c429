package curve

// generatorH is the Pedersen commitment's secondary generator. Its discrete
// log relative to G is unknown to any party: it is derived by multiplying G
// by a scalar pulled from a fixed domain-separated hash, exactly the
// teacher's pattern (internal/zkp/pedersen.go's hashToBytes("CCOIN_PEDERSEN_H"))
// but with an actual hash instead of a reversible XOR placeholder.
var generatorH = Multiply(domainScalar("VEILCOIN_PEDERSEN_H_GENERATOR"), G())

// H returns the Pedersen commitment's secondary generator.
func H() Point {
	return generatorH
}

// Commit computes the Pedersen commitment C = value*G + blind*H.
//
// Commit is homomorphic: Commit(a, x) + Commit(b, y) == Commit(a+b, x+y),
// which is what lets the transaction builder and verifier check value and
// token conservation without ever seeing the plaintext amounts.
func Commit(value, blind Scalar) Point {
	return Add(Multiply(value, G()), Multiply(blind, H()))
}
