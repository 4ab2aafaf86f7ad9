package tokens

import (
	"crypto/rand"
	"math/big"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	goerrors "github.com/goliatone/go-errors"
)

// MinSecretLength is the minimum byte length accepted for HMAC signing
// secrets. HMAC-SHA256 needs a 256 bit key, so shorter secrets are rejected
// instead of silently padded.
const MinSecretLength = 32

const secretAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// ValidateSecret enforces the secret strength policy: non-blank and at least
// MinSecretLength bytes. Returns ErrWeakSecret on failure.
func ValidateSecret(secret string) error {
	if strings.TrimSpace(secret) == "" {
		return ErrWeakSecret
	}

	if err := validation.Validate(secret,
		validation.Required,
		validation.Length(MinSecretLength, 0),
	); err != nil {
		return ErrWeakSecret
	}

	return nil
}

// GenerateSecret produces a random alphanumeric secret of the given length,
// suitable as an HMAC signing secret. Lengths below MinSecretLength are
// raised to it so generated secrets always pass validation.
func GenerateSecret(length int) (string, error) {
	if length < MinSecretLength {
		length = MinSecretLength
	}

	var sb strings.Builder
	sb.Grow(length)

	alphabetSize := big.NewInt(int64(len(secretAlphabet)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", goerrors.Wrap(err, goerrors.CategoryInternal, "unable to generate secret")
		}
		sb.WriteByte(secretAlphabet[n.Int64()])
	}

	return sb.String(), nil
}

// deriveKey turns a validated secret into HMAC key material. The raw secret
// bytes are the key; the secret is not retained anywhere else.
func deriveKey(secret string) []byte {
	return []byte(secret)
}
