package tx

import "errors"

// Verify's failure reasons. OQ-2 in the spec is resolved towards tightening:
// a dedicated ErrSignatureInvalid reason rather than an unreasoned (false, nil).
var (
	ErrEmptyOutputs        = errors.New("tx: transaction has no outputs")
	ErrValueCommitMismatch = errors.New("tx: value commits do not match")
	ErrProofInvalid        = errors.New("tx: proofs failed to verify")
	ErrTokenMismatch       = errors.New("tx: token ID mismatch")
	ErrSignatureInvalid    = errors.New("tx: signature invalid")
)
