package service

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/roster/pkg/jwtx"
)

// DefaultRoles are granted to every token.
var DefaultRoles = []string{"ROLE_USER"}

var ErrNoSigner = errors.New("no signing key available")

// TokenService issues and validates bearer tokens whose subject is a username.
type TokenService struct {
	KeyManager *jwtx.KeyManager
	Verifier   jwtx.Verifier
	Issuer     string
	TTL        time.Duration
}

// Issue signs a token for subject with a randomly chosen key.
func (s *TokenService) Issue(ctx context.Context, subject string) (string, error) {
	signer := s.KeyManager.GetSigner()
	if signer == nil {
		return "", ErrNoSigner
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultTokenTTL
	}

	claims := jwtx.NewClaims(subject, s.Issuer, DefaultRoles, ttl, time.Now())
	return signer.Sign(claims)
}

// Validate verifies token and returns its subject.
func (s *TokenService) Validate(ctx context.Context, token string) (string, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
