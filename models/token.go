package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is a best-effort, unverified view of the session token's
// registered JWT claims. It exists purely for diagnostics (e.g. logging
// when a stored token already looks expired); the token remains opaque
// for every authorization decision, which belongs to the server alone.
type TokenClaims struct {
	// Subject is the "sub" claim, typically the account ID.
	Subject string

	// ExpiresAt is the "exp" claim. Zero if the claim is absent.
	ExpiresAt time.Time
}

// PeekTokenClaims parses token without verifying its signature and
// extracts the registered claims. Returns an error if the value is not a
// structurally valid JWT; callers should treat that as "no information",
// not as an invalid session.
func PeekTokenClaims(token string) (TokenClaims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return TokenClaims{}, err
	}

	var claims TokenClaims
	if sub, err := parsed.Claims.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}

// Expired reports whether the claims carry an expiry that lies in the
// past relative to now. A missing expiry is never reported as expired.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}
