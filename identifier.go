package tokens

import "github.com/google/uuid"

// IdentifierSourceFunc adapts a function into an IdentifierSource.
type IdentifierSourceFunc func() string

// NextID satisfies the IdentifierSource interface. A nil func falls back to
// the default uuid source.
func (f IdentifierSourceFunc) NextID() string {
	if f == nil {
		return uuid.NewString()
	}
	return f()
}

// uuidSource is the default IdentifierSource, backed by random 128-bit UUIDs.
// uuid.NewString is safe for concurrent use, which keeps the resolver free of
// its own locking.
type uuidSource struct{}

func (uuidSource) NextID() string {
	return uuid.NewString()
}

// DefaultIdentifierSource returns the uuid-backed source used when a Config
// does not supply one.
func DefaultIdentifierSource() IdentifierSource {
	return uuidSource{}
}
