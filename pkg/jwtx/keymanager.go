package jwtx

import (
	"fmt"
	"math/rand/v2"

	"github.com/aussiebroadwan/roster/pkg/cryptox"
)

const (
	defaultNumKeys = 3
	maxNumKeys     = 10
	defaultRSABits = 4096
)

// KeyManager owns the signing keys of one process together with the
// KeySet and Verifier built from them.
type KeyManager struct {
	KeySet   *KeySet
	Verifier Verifier

	algorithm string
	signers   []Signer
}

type KeyManagerOptions struct {
	Algorithm string // RS256, ES256 or EdDSA
	Issuer    string
	RSABits   int // RS256 only, defaults to 4096
	NumKeys   int // defaults to 3, capped at 10
	KIDPrefix string
}

// NewEphemeralKeyManager generates fresh in-memory signing keys. Tokens
// issued by a previous process stop verifying after a restart.
func NewEphemeralKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, fmt.Errorf("jwtx: Issuer is required")
	}
	if _, err := signingMethod(opts.Algorithm); err != nil {
		return nil, err
	}

	numKeys := opts.NumKeys
	if numKeys <= 0 {
		numKeys = defaultNumKeys
	}
	numKeys = min(numKeys, maxNumKeys)

	keyset := NewKeySet()
	signers := make([]Signer, 0, numKeys)

	for i := range numKeys {
		kid, err := newKeyID(opts.KIDPrefix)
		if err != nil {
			return nil, err
		}

		pemKey, err := generateKey(opts.Algorithm, opts.RSABits)
		if err != nil {
			return nil, fmt.Errorf("jwtx: generate key %d: %w", i+1, err)
		}

		signer, err := NewSigner(opts.Algorithm, kid, pemKey)
		if err != nil {
			return nil, fmt.Errorf("jwtx: load key %d: %w", i+1, err)
		}
		if err := keyset.AddSigner(signer); err != nil {
			return nil, fmt.Errorf("jwtx: publish key %d: %w", i+1, err)
		}

		signers = append(signers, signer)
	}

	return &KeyManager{
		KeySet:    keyset,
		Verifier:  NewKeySetVerifier(keyset, opts.Algorithm, opts.Issuer),
		algorithm: opts.Algorithm,
		signers:   signers,
	}, nil
}

func generateKey(alg string, rsaBits int) ([]byte, error) {
	switch alg {
	case AlgorithmRS256:
		if rsaBits == 0 {
			rsaBits = defaultRSABits
		}
		return cryptox.GenerateRSAKey(rsaBits)
	case AlgorithmES256:
		return cryptox.GenerateES256Key()
	default:
		return cryptox.GenerateEd25519Key()
	}
}

func newKeyID(prefix string) (string, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		return "", fmt.Errorf("jwtx: generate key id: %w", err)
	}
	if prefix == "" {
		return token, nil
	}
	return prefix + "-" + token, nil
}

func (km *KeyManager) Algorithm() string { return km.algorithm }

func (km *KeyManager) IsReady() bool { return km.KeySet.IsReady() && len(km.signers) > 0 }

func (km *KeyManager) NumSigners() int { return len(km.signers) }

// GetSigner picks one of the signing keys at random.
func (km *KeyManager) GetSigner() Signer {
	switch len(km.signers) {
	case 0:
		return nil
	case 1:
		return km.signers[0]
	default:
		return km.signers[rand.IntN(len(km.signers))]
	}
}
