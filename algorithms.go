package tokens

import (
	"github.com/golang-jwt/jwt/v5"
	goerrors "github.com/goliatone/go-errors"
)

// Algorithm selects the signing algorithm a resolver is bound to.
type Algorithm string

const (
	// HS256 is HMAC-SHA256, the default algorithm.
	HS256 Algorithm = "HS256"
	// HS384 is HMAC-SHA384.
	HS384 Algorithm = "HS384"
	// HS512 is HMAC-SHA512.
	HS512 Algorithm = "HS512"
	// EdDSA is Ed25519, the asymmetric-key variant.
	EdDSA Algorithm = "EdDSA"
)

// IsValid checks if the algorithm is one of the supported set
func (a Algorithm) IsValid() bool {
	switch a {
	case HS256, HS384, HS512, EdDSA:
		return true
	default:
		return false
	}
}

// IsHMAC reports whether the algorithm belongs to the HMAC family and is
// therefore keyed by a shared secret.
func (a Algorithm) IsHMAC() bool {
	switch a {
	case HS256, HS384, HS512:
		return true
	default:
		return false
	}
}

func (a Algorithm) signingMethod() (jwt.SigningMethod, error) {
	switch a {
	case HS256:
		return jwt.SigningMethodHS256, nil
	case HS384:
		return jwt.SigningMethodHS384, nil
	case HS512:
		return jwt.SigningMethodHS512, nil
	case EdDSA:
		return jwt.SigningMethodEdDSA, nil
	default:
		return nil, goerrors.New("unsupported signing algorithm: "+string(a), goerrors.CategoryValidation)
	}
}
