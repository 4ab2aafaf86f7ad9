package tokens

import (
	"errors"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeWeakSecret       = "WEAK_SECRET"
	textCodeMissingIssuer    = "MISSING_ISSUER"
	textCodeTokenExpired     = "TOKEN_EXPIRED"
	textCodeSignatureInvalid = "TOKEN_SIGNATURE_INVALID"
	textCodeTokenMalformed   = "TOKEN_MALFORMED"
	textCodeExtraction       = "PAYLOAD_EXTRACTION_FAILED"
)

// ErrWeakSecret is returned at construction time when the signing secret fails
// the minimum strength policy. There is no retry; callers must supply a
// stronger secret.
var ErrWeakSecret = goerrors.New("secret is too weak", goerrors.CategoryValidation).
	WithTextCode(textCodeWeakSecret)

// ErrMissingIssuer is returned when a resolver is built without an issuer.
var ErrMissingIssuer = goerrors.New("issuer is required", goerrors.CategoryValidation).
	WithTextCode(textCodeMissingIssuer)

// ErrTokenExpired signals a token outside its validity window.
var ErrTokenExpired = goerrors.New("token is expired", goerrors.CategoryAuth).
	WithTextCode(textCodeTokenExpired)

// ErrSignatureInvalid signals a token whose signature does not verify.
var ErrSignatureInvalid = goerrors.New("token signature is invalid", goerrors.CategoryAuth).
	WithTextCode(textCodeSignatureInvalid)

// ErrTokenMalformed signals a token that could not be parsed at all.
var ErrTokenMalformed = goerrors.New("token is malformed", goerrors.CategoryAuth).
	WithTextCode(textCodeTokenMalformed)

// ErrExtraction signals that a verified claim set could not be mapped onto the
// caller's payload type.
var ErrExtraction = goerrors.New("unable to map claims to payload", goerrors.CategoryBadInput).
	WithTextCode(textCodeExtraction)

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTokenExpired) {
		return true
	}
	return strings.Contains(err.Error(), "token is expired")
}

// IsSignatureInvalidError will check for signature verification failures
func IsSignatureInvalidError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrSignatureInvalid) {
		return true
	}
	return strings.Contains(err.Error(), "signature is invalid")
}

// IsMalformedError will check for error message
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTokenMalformed) {
		return true
	}
	return strings.Contains(err.Error(), "token is malformed") ||
		strings.Contains(err.Error(), "missing or malformed JWT")
}

// IsWeakSecretError will check for secrets rejected by the strength policy
func IsWeakSecretError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrWeakSecret) ||
		strings.Contains(err.Error(), "secret is too weak")
}
