package interfaces

import types "wertsigner/internal/domain/types"

// RecordSigner attests transaction records.
type RecordSigner interface {
	// Sign returns a copy of r with a lowercase hex "signature" field. r is
	// never modified.
	Sign(r types.Record, opts types.SignOptions) (types.Record, error)
}
