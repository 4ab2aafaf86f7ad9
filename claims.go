package tokens

import "time"

// Registered claim names managed by the resolver. These are always assigned
// during Create and always excluded from typed payload round-trips.
const (
	ClaimIssuer    = "iss"
	ClaimSubject   = "sub"
	ClaimAudience  = "aud"
	ClaimExpiresAt = "exp"
	ClaimNotBefore = "nbf"
	ClaimIssuedAt  = "iat"
	ClaimTokenID   = "jti"
)

var reservedClaims = map[string]struct{}{
	ClaimIssuer:    {},
	ClaimSubject:   {},
	ClaimAudience:  {},
	ClaimExpiresAt: {},
	ClaimNotBefore: {},
	ClaimIssuedAt:  {},
	ClaimTokenID:   {},
}

// IsReservedClaim reports whether name is a registered claim the resolver
// manages itself.
func IsReservedClaim(name string) bool {
	_, ok := reservedClaims[name]
	return ok
}

// ReservedClaims returns the registered claim name vocabulary.
func ReservedClaims() []string {
	return []string{
		ClaimIssuer,
		ClaimSubject,
		ClaimAudience,
		ClaimExpiresAt,
		ClaimNotBefore,
		ClaimIssuedAt,
		ClaimTokenID,
	}
}

// ClaimSet is the verified claim map of a resolved token.
type ClaimSet map[string]any

// Get returns the raw value of a claim.
func (c ClaimSet) Get(name string) (any, bool) {
	v, ok := c[name]
	return v, ok
}

// Issuer returns the iss claim
func (c ClaimSet) Issuer() string {
	return c.stringClaim(ClaimIssuer)
}

// Subject returns the sub claim
func (c ClaimSet) Subject() string {
	return c.stringClaim(ClaimSubject)
}

// Audience returns the aud claim. Backends that decode aud as a list yield
// the first entry.
func (c ClaimSet) Audience() string {
	switch aud := c[ClaimAudience].(type) {
	case string:
		return aud
	case []string:
		if len(aud) > 0 {
			return aud[0]
		}
	case []any:
		if len(aud) > 0 {
			if s, ok := aud[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

// TokenID returns the jti claim
func (c ClaimSet) TokenID() string {
	return c.stringClaim(ClaimTokenID)
}

// ExpiresAt returns the exp claim as a time, zero when absent.
func (c ClaimSet) ExpiresAt() time.Time {
	return c.timeClaim(ClaimExpiresAt)
}

// NotBefore returns the nbf claim as a time, zero when absent.
func (c ClaimSet) NotBefore() time.Time {
	return c.timeClaim(ClaimNotBefore)
}

// IssuedAt returns the iat claim as a time, zero when absent.
func (c ClaimSet) IssuedAt() time.Time {
	return c.timeClaim(ClaimIssuedAt)
}

// PayloadClaims returns a copy of the claim set with every reserved claim
// stripped, leaving only application payload data.
func (c ClaimSet) PayloadClaims() map[string]any {
	payload := make(map[string]any, len(c))
	for name, value := range c {
		if IsReservedClaim(name) {
			continue
		}
		payload[name] = value
	}
	return payload
}

func (c ClaimSet) stringClaim(name string) string {
	if s, ok := c[name].(string); ok {
		return s
	}
	return ""
}

func (c ClaimSet) timeClaim(name string) time.Time {
	// numeric date claims decode as float64 seconds from JSON backends, but
	// locally assembled claim sets carry int64
	switch v := c[name].(type) {
	case float64:
		return time.Unix(int64(v), 0)
	case int64:
		return time.Unix(v, 0)
	case int:
		return time.Unix(int64(v), 0)
	}
	return time.Time{}
}
