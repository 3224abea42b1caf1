package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/roster/pkg/cryptox"
	"github.com/aussiebroadwan/roster/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "https://roster.test"

func generate(t *testing.T, alg string) []byte {
	t.Helper()

	var (
		pemKey []byte
		err    error
	)
	switch alg {
	case jwtx.AlgorithmRS256:
		pemKey, err = cryptox.GenerateRSAKey(cryptox.MinRSABits)
	case jwtx.AlgorithmES256:
		pemKey, err = cryptox.GenerateES256Key()
	default:
		pemKey, err = cryptox.GenerateEd25519Key()
	}
	require.NoError(t, err)
	return pemKey
}

func TestSignAndVerify(t *testing.T) {
	tests := []struct {
		alg string
		kty string
	}{
		{alg: jwtx.AlgorithmRS256, kty: "RSA"},
		{alg: jwtx.AlgorithmES256, kty: "EC"},
		{alg: jwtx.AlgorithmEdDSA, kty: "OKP"},
	}

	for _, tt := range tests {
		t.Run(tt.alg, func(t *testing.T) {
			signer, err := jwtx.NewSigner(tt.alg, "kid-"+tt.alg, generate(t, tt.alg))
			require.NoError(t, err)
			require.Equal(t, tt.alg, signer.Alg())
			require.Equal(t, tt.kty, signer.PublicJWK().Kty)

			keyset := jwtx.NewKeySet()
			require.NoError(t, keyset.AddSigner(signer))
			verifier := jwtx.NewKeySetVerifier(keyset, tt.alg, testIssuer)

			claims := jwtx.NewClaims("frandelgadillo", testIssuer, []string{"ROLE_USER"}, time.Minute, time.Now())
			token, err := signer.Sign(claims)
			require.NoError(t, err)

			got, err := verifier.Verify(token)
			require.NoError(t, err)
			require.Equal(t, "frandelgadillo", got.Subject)
			require.Equal(t, []string{"ROLE_USER"}, got.Roles)
			require.Equal(t, claims.ID, got.ID)
		})
	}
}

func TestNewSigner_KeyTypeMismatch(t *testing.T) {
	_, err := jwtx.NewSigner(jwtx.AlgorithmES256, "kid", generate(t, jwtx.AlgorithmEdDSA))
	require.Error(t, err)

	_, err = jwtx.NewSigner("HS256", "kid", generate(t, jwtx.AlgorithmEdDSA))
	require.Error(t, err)
}

func TestVerify_Rejects(t *testing.T) {
	signer, err := jwtx.NewSigner(jwtx.AlgorithmEdDSA, "kid-1", generate(t, jwtx.AlgorithmEdDSA))
	require.NoError(t, err)

	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer))
	verifier := jwtx.NewKeySetVerifier(keyset, jwtx.AlgorithmEdDSA, testIssuer)

	sign := func(c jwtx.Claims) string {
		token, err := signer.Sign(c)
		require.NoError(t, err)
		return token
	}

	t.Run("wrong issuer", func(t *testing.T) {
		token := sign(jwtx.NewClaims("alice", "https://evil.test", nil, time.Minute, time.Now()))
		_, err := verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("expired", func(t *testing.T) {
		token := sign(jwtx.NewClaims("alice", testIssuer, nil, time.Minute, time.Now().Add(-time.Hour)))
		_, err := verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("missing expiry", func(t *testing.T) {
		claims := jwtx.NewClaims("alice", testIssuer, nil, time.Minute, time.Now())
		claims.ExpiresAt = nil

		_, err := verifier.Verify(sign(claims))
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})

	t.Run("missing subject", func(t *testing.T) {
		token := sign(jwtx.NewClaims("", testIssuer, nil, time.Minute, time.Now()))
		_, err := verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})

	t.Run("unknown kid", func(t *testing.T) {
		other, err := jwtx.NewSigner(jwtx.AlgorithmEdDSA, "kid-2", generate(t, jwtx.AlgorithmEdDSA))
		require.NoError(t, err)

		token, err := other.Sign(jwtx.NewClaims("alice", testIssuer, nil, time.Minute, time.Now()))
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrUnknownKID)
	})

	t.Run("tampered payload", func(t *testing.T) {
		token := sign(jwtx.NewClaims("alice", testIssuer, nil, time.Minute, time.Now()))
		forged := sign(jwtx.NewClaims("mallory", testIssuer, nil, time.Minute, time.Now()))

		parts := strings.Split(token, ".")
		parts[1] = strings.Split(forged, ".")[1]

		_, err := verifier.Verify(strings.Join(parts, "."))
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := verifier.Verify("not-a-jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})
}
