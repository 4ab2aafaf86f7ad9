package tokens

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// DefaultRenewalExpiration is the validity window applied by Renew when the
// caller does not override it.
const DefaultRenewalExpiration = 30 * time.Minute

// Config holds resolver construction options. The zero value of every
// optional field maps to an explicit default: HS256, a uuid-backed
// IdentifierSource, the golang-jwt Signer, and a 30 minute renewal window.
type Config struct {
	// Algorithm selects the signing algorithm. Defaults to HS256.
	Algorithm Algorithm
	// Issuer is the iss claim stamped on every created token. Required.
	Issuer string
	// Secret is the HMAC signing secret. Required for HMAC algorithms
	// unless GenerateSecret is set.
	Secret string
	// GenerateSecret provisions a random secret when Secret is empty.
	GenerateSecret bool
	// PrivateKey and PublicKey carry the ed25519 key material for EdDSA,
	// raw or PEM encoded.
	PrivateKey []byte
	PublicKey  []byte
	// IdentifierSource overrides the default jti generator.
	IdentifierSource IdentifierSource
	// Signer overrides the default golang-jwt signing backend.
	Signer Signer
	// Logger receives diagnostics. Defaults to a stdout logger.
	Logger Logger
	// RenewalExpiration overrides DefaultRenewalExpiration for Renew calls
	// that do not set their own window.
	RenewalExpiration time.Duration
}

// Validate checks the config after defaults have been applied.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Issuer, validation.Required),
		validation.Field(&c.Algorithm, validation.Required, validation.In(HS256, HS384, HS512, EdDSA)),
	)
}

func (c Config) withDefaults() Config {
	if c.Algorithm == "" {
		c.Algorithm = HS256
	}
	if c.IdentifierSource == nil {
		c.IdentifierSource = DefaultIdentifierSource()
	}
	if c.Logger == nil {
		c.Logger = defLogger{}
	}
	if c.RenewalExpiration <= 0 {
		c.RenewalExpiration = DefaultRenewalExpiration
	}
	return c
}
