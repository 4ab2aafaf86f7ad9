package tokens

// Verifier verifies tokens and returns claim sets without tying callers to a
// specific resolver or signing implementation. *Resolver satisfies Verifier.
type Verifier interface {
	Resolve(token string) (ClaimSet, error)
}

// VerifierFunc adapts a function into a Verifier.
type VerifierFunc func(token string) (ClaimSet, error)

// Resolve satisfies the Verifier interface.
func (f VerifierFunc) Resolve(token string) (ClaimSet, error) {
	if f == nil {
		return nil, ErrTokenMalformed
	}
	return f(token)
}

// MultiVerifier tries verifiers in order until one succeeds, which lets a
// service accept tokens from several issuers or during a secret changeover.
// Signature failures and malformed tokens mean "try next"; other failures
// (expiry above all) stop the chain, since the token was recognized.
type MultiVerifier struct {
	verifiers []Verifier
}

// NewMultiVerifier filters nil verifiers and returns a composite verifier.
func NewMultiVerifier(verifiers ...Verifier) *MultiVerifier {
	filtered := make([]Verifier, 0, len(verifiers))
	for _, v := range verifiers {
		if v != nil {
			filtered = append(filtered, v)
		}
	}
	return &MultiVerifier{verifiers: filtered}
}

// Resolve satisfies the Verifier interface.
func (m *MultiVerifier) Resolve(token string) (ClaimSet, error) {
	var lastErr error
	for _, v := range m.verifiers {
		claims, err := v.Resolve(token)
		if err == nil {
			return claims, nil
		}
		if IsMalformedError(err) || IsSignatureInvalidError(err) {
			lastErr = err
			continue
		}
		return nil, err
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrTokenMalformed
}
