package tokens

import (
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	goerrors "github.com/goliatone/go-errors"
)

// JWTSignerConfig configures the golang-jwt backed signing backend. HMAC
// algorithms take a Secret, EdDSA takes an ed25519 key pair (raw or PEM).
// A PrivateKey alone is enough for EdDSA, the verify key is derived from it.
type JWTSignerConfig struct {
	Algorithm  Algorithm
	Secret     string
	PrivateKey []byte
	PublicKey  []byte
	Logger     Logger
}

type jwtSigner struct {
	method    jwt.SigningMethod
	signKey   any
	verifyKey any
	logger    Logger
}

// NewJWTSigner creates the default Signer implementation on top of
// golang-jwt. The returned signer serializes claim sets as JWTs and enforces
// the signature and time-window checks on Verify.
func NewJWTSigner(cfg JWTSignerConfig) (Signer, error) {
	if cfg.Logger == nil {
		cfg.Logger = defLogger{}
	}

	method, err := cfg.Algorithm.signingMethod()
	if err != nil {
		return nil, err
	}

	s := &jwtSigner{
		method: method,
		logger: cfg.Logger,
	}

	if cfg.Algorithm.IsHMAC() {
		if err := ValidateSecret(cfg.Secret); err != nil {
			return nil, err
		}
		key := deriveKey(cfg.Secret)
		s.signKey = key
		s.verifyKey = key
		return s, nil
	}

	if len(cfg.PrivateKey) == 0 && len(cfg.PublicKey) == 0 {
		return nil, goerrors.New("eddsa requires a private key or a public key", goerrors.CategoryValidation)
	}

	if len(cfg.PrivateKey) > 0 {
		privateKey, err := parseEdPrivateKey(cfg.PrivateKey)
		if err != nil {
			return nil, err
		}
		s.signKey = privateKey
		s.verifyKey = privateKey.Public().(ed25519.PublicKey)
	}

	if len(cfg.PublicKey) > 0 {
		publicKey, err := parseEdPublicKey(cfg.PublicKey)
		if err != nil {
			return nil, err
		}
		s.verifyKey = publicKey
	}

	return s, nil
}

// Sign serializes and signs the claim set into a compact token string.
func (s *jwtSigner) Sign(claims map[string]any) (string, error) {
	if s.signKey == nil {
		return "", goerrors.New("signer is verify-only, no private key configured", goerrors.CategoryOperation)
	}

	token := jwt.NewWithClaims(s.method, jwt.MapClaims(claims))

	signed, err := token.SignedString(s.signKey)
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryInternal, "failed to sign token")
	}

	return signed, nil
}

// Verify parses the token, checks its signature and validity window, and
// returns the decoded claims.
func (s *jwtSigner) Verify(tokenString string) (map[string]any, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{s.method.Alg()}))

	token, err := parser.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != s.method.Alg() {
			s.logger.Error("Verify encountered unexpected signing method: %v", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.verifyKey, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenNotValidYet):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrSignatureInvalid
		default:
			return nil, ErrTokenMalformed
		}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}

	return map[string]any(claims), nil
}

func parseEdPrivateKey(key []byte) (ed25519.PrivateKey, error) {
	if len(key) == ed25519.PrivateKeySize {
		return ed25519.PrivateKey(key), nil
	}
	parsed, err := jwt.ParseEdPrivateKeyFromPEM(key)
	if err != nil {
		return nil, goerrors.New("invalid ed25519 private key", goerrors.CategoryValidation)
	}
	edKey, ok := parsed.(ed25519.PrivateKey)
	if !ok {
		return nil, goerrors.New("invalid ed25519 private key type", goerrors.CategoryValidation)
	}
	return edKey, nil
}

func parseEdPublicKey(key []byte) (ed25519.PublicKey, error) {
	if len(key) == ed25519.PublicKeySize {
		return ed25519.PublicKey(key), nil
	}
	parsed, err := jwt.ParseEdPublicKeyFromPEM(key)
	if err != nil {
		return nil, goerrors.New("invalid ed25519 public key", goerrors.CategoryValidation)
	}
	edKey, ok := parsed.(ed25519.PublicKey)
	if !ok {
		return nil, goerrors.New("invalid ed25519 public key type", goerrors.CategoryValidation)
	}
	return edKey, nil
}
