package tokens

import "fmt"

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// Signer is the pluggable signing backend. Implementations own the wire
// format: Sign serializes and signs a claim set into a compact token string,
// Verify checks the signature and the validity window (nbf <= now <= exp) and
// returns the decoded claims. Verification failures must surface as
// ErrSignatureInvalid, ErrTokenExpired, or ErrTokenMalformed so callers can
// tell the cases apart.
type Signer interface {
	Sign(claims map[string]any) (string, error)
	Verify(token string) (map[string]any, error)
}

// IdentifierSource produces the jti claim for every issued token. Values must
// be unique per token for the lifetime of the issuing system and the source
// must be safe for concurrent use.
type IdentifierSource interface {
	NextID() string
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] TOKENS "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] TOKENS "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] TOKENS "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
