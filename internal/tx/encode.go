package tx

import (
	"encoding/binary"
)

// PartialEncode returns a deterministic byte encoding of the transaction, in
// (clear inputs, shielded inputs, outputs) order — the message both the
// builder and the verifier sign/check against. Clear inputs are encoded in
// full apart from their signatures; shielded inputs and outputs contribute
// only their revealed public values. Signatures, the proof objects'
// witnesses and each output's EncNote are not encoded, so they are not
// covered by the signatures. Value is written as a fixed 8-byte big-endian
// integer; every other field is length-prefixed.
func (t *Transaction) PartialEncode() []byte {
	buf := make([]byte, 0, 256)

	for _, in := range t.ClearInputs {
		buf = appendUint64(buf, in.Value)
		buf = appendLP(buf, in.TokenID.Bytes())
		buf = appendLP(buf, in.ValueBlind.Bytes())
		buf = appendLP(buf, in.TokenBlind.Bytes())
		buf = appendLP(buf, in.SignaturePublic.Bytes())
	}

	for _, in := range t.Inputs {
		buf = appendLP(buf, in.Revealed.Nullifier.Bytes())
		buf = appendLP(buf, in.Revealed.ValueCommit.Bytes())
		buf = appendLP(buf, in.Revealed.TokenCommit.Bytes())
		buf = appendLP(buf, in.Revealed.AllCoins.Digest().Bytes())
		buf = appendLP(buf, in.Revealed.SignaturePublic.Bytes())
	}

	for _, out := range t.Outputs {
		buf = appendLP(buf, out.Revealed.Coin.Bytes())
		buf = appendLP(buf, out.Revealed.ValueCommit.Bytes())
		buf = appendLP(buf, out.Revealed.TokenCommit.Bytes())
	}

	return buf
}

func appendUint64(buf []byte, v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(buf, b[:]...)
}

func appendLP(buf []byte, data []byte) []byte {
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(data)))
	buf = append(buf, length[:]...)
	return append(buf, data...)
}
