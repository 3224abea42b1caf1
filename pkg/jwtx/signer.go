package jwtx

import (
	"crypto"
	"fmt"

	"github.com/aussiebroadwan/roster/pkg/cryptox"
	"github.com/golang-jwt/jwt/v5"
)

// Supported signing algorithms.
const (
	AlgorithmRS256 = "RS256"
	AlgorithmES256 = "ES256"
	AlgorithmEdDSA = "EdDSA"
)

// Signer signs claims into a compact JWT.
type Signer interface {
	Alg() string
	KID() string
	Sign(Claims) (string, error)
	PublicJWK() JWK
}

type keySigner struct {
	kid    string
	method jwt.SigningMethod
	key    crypto.Signer
	jwk    JWK
}

// NewSigner loads a PKCS8 PEM private key and returns a Signer for alg. The
// key type must match the algorithm.
func NewSigner(alg, kid string, pemKey []byte) (Signer, error) {
	key, err := cryptox.ParsePrivateKey(pemKey)
	if err != nil {
		return nil, fmt.Errorf("jwtx: %w", err)
	}

	method, err := signingMethod(alg)
	if err != nil {
		return nil, err
	}

	jwk, err := NewJWK(kid, alg, key.Public())
	if err != nil {
		return nil, err
	}
	if jwk.Kty != keyTypeFor(alg) {
		return nil, fmt.Errorf("jwtx: %s key cannot sign %s", jwk.Kty, alg)
	}

	return &keySigner{kid: kid, method: method, key: key, jwk: jwk}, nil
}

func (s *keySigner) Alg() string    { return s.method.Alg() }
func (s *keySigner) KID() string    { return s.kid }
func (s *keySigner) PublicJWK() JWK { return s.jwk }

func (s *keySigner) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(s.method, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.key)
}

func signingMethod(alg string) (jwt.SigningMethod, error) {
	switch alg {
	case AlgorithmRS256:
		return jwt.SigningMethodRS256, nil
	case AlgorithmES256:
		return jwt.SigningMethodES256, nil
	case AlgorithmEdDSA:
		return jwt.SigningMethodEdDSA, nil
	default:
		return nil, fmt.Errorf("jwtx: unsupported algorithm %q (supported: RS256, ES256, EdDSA)", alg)
	}
}

func keyTypeFor(alg string) string {
	switch alg {
	case AlgorithmRS256:
		return "RSA"
	case AlgorithmES256:
		return "EC"
	default:
		return "OKP"
	}
}
