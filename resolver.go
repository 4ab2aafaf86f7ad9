package tokens

import (
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

// Resolver issues, verifies, extracts, and renews signed tokens. Its identity
// (algorithm, issuer, key) is fixed at construction and never mutated, so one
// instance can serve any number of concurrent callers.
type Resolver struct {
	algorithm         Algorithm
	issuer            string
	ids               IdentifierSource
	signer            Signer
	logger            Logger
	renewalExpiration time.Duration
}

// New builds a Resolver from cfg. Identity problems (missing issuer, weak
// secret, unsupported algorithm) fail here so no resolver is ever usable in a
// broken state.
func New(cfg Config) (*Resolver, error) {
	cfg = cfg.withDefaults()

	if strings.TrimSpace(cfg.Issuer) == "" {
		return nil, ErrMissingIssuer
	}
	if err := cfg.Validate(); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "invalid resolver configuration")
	}

	signer := cfg.Signer
	if signer == nil {
		if cfg.Algorithm.IsHMAC() && cfg.Secret == "" && cfg.GenerateSecret {
			secret, err := GenerateSecret(MinSecretLength)
			if err != nil {
				return nil, err
			}
			cfg.Secret = secret
		}

		var err error
		signer, err = NewJWTSigner(JWTSignerConfig{
			Algorithm:  cfg.Algorithm,
			Secret:     cfg.Secret,
			PrivateKey: cfg.PrivateKey,
			PublicKey:  cfg.PublicKey,
			Logger:     cfg.Logger,
		})
		if err != nil {
			return nil, err
		}
	}

	return &Resolver{
		algorithm:         cfg.Algorithm,
		issuer:            cfg.Issuer,
		ids:               cfg.IdentifierSource,
		signer:            signer,
		logger:            cfg.Logger,
		renewalExpiration: cfg.RenewalExpiration,
	}, nil
}

// Issuer returns the iss claim value this resolver stamps on created tokens.
func (r *Resolver) Issuer() string {
	return r.issuer
}

// Algorithm returns the signing algorithm this resolver is bound to.
func (r *Resolver) Algorithm() Algorithm {
	return r.algorithm
}

// Create issues a signed token valid for expireAfter, bound to the given
// audience and subject. payload may be nil, a map[string]any, a ClaimSet, or
// a struct marshalled through the `claim` tag rules. Payload keys that
// collide with reserved claim names lose to the resolver-assigned values.
func (r *Resolver) Create(expireAfter time.Duration, audience, subject string, payload any) (string, error) {
	claims, err := r.buildClaims(expireAfter, audience, subject, payload)
	if err != nil {
		return "", err
	}

	return r.signer.Sign(claims)
}

// Resolve verifies the token and returns its claim set. This is the single
// verification choke point; Extract and Renew build on it. Failures surface
// as ErrSignatureInvalid, ErrTokenExpired, or ErrTokenMalformed.
func (r *Resolver) Resolve(token string) (ClaimSet, error) {
	claims, err := r.signer.Verify(token)
	if err != nil {
		return nil, err
	}

	return ClaimSet(claims), nil
}

// Extract verifies the token and fills target, a struct pointer, with its
// payload claims. Reserved claims never reach the target; fields that cannot
// take their claim value are logged and left at their zero value.
func (r *Resolver) Extract(token string, target any) error {
	claims, err := r.Resolve(token)
	if err != nil {
		return err
	}

	return unmarshalPayload(claims, target, r.logger)
}

// RenewOptions controls how Renew re-issues a token.
type RenewOptions struct {
	// ExpireAfter overrides the resolver's renewal window. Zero uses the
	// configured default (30 minutes unless overridden in Config).
	ExpireAfter time.Duration
	// Payload replaces the old token's payload claims. Nil carries the old
	// payload forward.
	Payload any
}

// Renew verifies oldToken and issues a replacement with the same subject and
// audience, a refreshed validity window, and a fresh jti. An expired or
// otherwise invalid token cannot be renewed. The old payload claims carry
// over unless opts.Payload supplies a replacement; either way reserved claim
// names are stripped before re-issue, the new token's registered claims are
// always resolver-assigned.
func (r *Resolver) Renew(oldToken string, opts RenewOptions) (string, error) {
	claims, err := r.Resolve(oldToken)
	if err != nil {
		return "", err
	}

	expireAfter := opts.ExpireAfter
	if expireAfter <= 0 {
		expireAfter = r.renewalExpiration
	}

	payload := opts.Payload
	if payload == nil {
		payload = claims.PayloadClaims()
	}

	return r.Create(expireAfter, claims.Audience(), claims.Subject(), payload)
}

func (r *Resolver) buildClaims(expireAfter time.Duration, audience, subject string, payload any) (map[string]any, error) {
	claims := make(map[string]any)

	switch p := payload.(type) {
	case nil:
	case map[string]any:
		for name, value := range p {
			claims[name] = value
		}
	case ClaimSet:
		for name, value := range p {
			claims[name] = value
		}
	default:
		marshalled, err := MarshalPayload(payload)
		if err != nil {
			return nil, err
		}
		for name, value := range marshalled {
			claims[name] = value
		}
	}

	// payload cannot override registered claims
	for name := range claims {
		if IsReservedClaim(name) {
			r.logger.Debug("Payload claim %q collides with a reserved claim, dropping it", name)
			delete(claims, name)
		}
	}

	now := time.Now()
	claims[ClaimIssuer] = r.issuer
	claims[ClaimSubject] = subject
	claims[ClaimAudience] = audience
	claims[ClaimIssuedAt] = now.Unix()
	claims[ClaimNotBefore] = now.Unix()
	claims[ClaimExpiresAt] = now.Add(expireAfter).Unix()
	claims[ClaimTokenID] = r.ids.NextID()

	return claims, nil
}
