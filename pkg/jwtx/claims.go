package jwtx

import (
	"fmt"
	"time"

	"github.com/aussiebroadwan/roster/pkg/idx"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the lifetime of a login token.
const DefaultTokenTTL = time.Hour

// Claims are the claims carried by roster access tokens. The subject is the
// username of the authenticated user.
type Claims struct {
	jwt.RegisteredClaims

	Roles []string `json:"roles,omitempty"`
}

// NewClaims builds claims for subject valid from now until now+ttl.
func NewClaims(subject, issuer string, roles []string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        idx.NewAt(now).String(),
		},
		Roles: roles,
	}
}

// ValidateIssuer checks the iss claim. An empty expected issuer accepts any.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected != "" && c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry checks exp and nbf against now, allowing leeway for clock skew.
// A token without exp is rejected.
func (c *Claims) ValidateExpiry(now time.Time, leeway time.Duration) error {
	if c.ExpiresAt == nil {
		return fmt.Errorf("%w: missing exp", ErrInvalidClaim)
	}
	if now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}
	return nil
}
