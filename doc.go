// Package tokens provides a vendor-neutral facade for issuing, verifying, and
// renewing signed tokens. Callers work against a Resolver instead of a concrete
// token library; the actual signing and parsing is delegated to a pluggable
// Signer backend (a golang-jwt backed implementation ships by default).
//
// Token lifecycle:
//   - Resolver.Create assembles the registered claims (iss, sub, aud, exp, nbf,
//     iat, jti) around an optional application payload and hands the claim set
//     to the Signer. Every token gets a fresh jti from the configured
//     IdentifierSource.
//   - Resolver.Resolve is the single verification choke point. The backend
//     checks the signature and the validity window and reports typed failures
//     so callers can tell "re-authenticate" apart from "reject".
//   - Resolver.Renew re-issues a token with the same subject and audience, a
//     refreshed window, and a brand-new jti. Expired tokens cannot be renewed.
//
// Typed payloads:
//   - Application structs map to claims field by field via the `claim` struct
//     tag. Fields tagged `claim:"-"` never enter the token and are never
//     restored on extraction. Claims the target struct does not declare are
//     ignored so payloads can evolve without breaking old consumers.
//
// The Resolver carries no mutable state beyond its construction-time identity
// (algorithm, issuer, key), so a single instance is safe for concurrent use.
package tokens
