package jwtx

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/aussiebroadwan/clinic/pkg/cryptox"
)

// AlgorithmEdDSA is the only signing algorithm identity tokens use.
const AlgorithmEdDSA = "EdDSA"

// KeyManager owns the signing keys for one running instance plus the
// verifier that trusts them.
//
// Keys are selected randomly for signing operations.
type KeyManager struct {
	Verifier Verifier
	KeySet   *KeySet

	signers []Signer
	mu      sync.RWMutex
}

// KeyManagerOptions configures the KeyManager.
type KeyManagerOptions struct {
	// Issuer is the issuer claim (iss) that will be validated in tokens.
	Issuer string

	// NumKeys specifies how many signing keys to generate.
	// Defaults to 3 if not specified. Minimum is 1, maximum is 10.
	NumKeys int
}

// NewEphemeralKeyManager creates a new KeyManager with ephemeral keys.
// The keys only exist in memory, so every outstanding token stops
// verifying when the process restarts.
func NewEphemeralKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, fmt.Errorf("jwtx: Issuer is required")
	}

	numKeys := opts.NumKeys
	if numKeys <= 0 {
		numKeys = 3
	}
	if numKeys > 10 {
		numKeys = 10
	}

	keyset := NewKeySet()
	signers := make([]Signer, 0, numKeys)

	for i := 0; i < numKeys; i++ {
		keyID, err := generateRandomKeyID()
		if err != nil {
			return nil, fmt.Errorf("jwtx: failed to generate key ID: %w", err)
		}

		pemBytes, err := cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, fmt.Errorf("jwtx: failed to generate EdDSA key %d: %w", i+1, err)
		}

		signer, err := NewSignerEdDSA(keyID, pemBytes)
		if err != nil {
			return nil, fmt.Errorf("jwtx: failed to load signer %d: %w", i+1, err)
		}

		signers = append(signers, signer)

		if err := keyset.AddSigner(signer); err != nil {
			return nil, fmt.Errorf("jwtx: failed to add signer %d to keyset: %w", i+1, err)
		}
	}

	return &KeyManager{
		Verifier: NewVerifierEdDSA(keyset, opts.Issuer),
		KeySet:   keyset,
		signers:  signers,
	}, nil
}

// NewKeyManagerFromPEM wraps a single persisted Ed25519 key. Tokens survive
// restarts as long as the same key file is supplied.
func NewKeyManagerFromPEM(issuer string, pemKey []byte) (*KeyManager, error) {
	if issuer == "" {
		return nil, fmt.Errorf("jwtx: Issuer is required")
	}

	keyID, err := keyIDFromPEM(pemKey)
	if err != nil {
		return nil, err
	}

	signer, err := NewSignerEdDSA(keyID, pemKey)
	if err != nil {
		return nil, err
	}
	if err := signer.Validate(); err != nil {
		return nil, err
	}

	keyset := NewKeySet()
	if err := keyset.AddSigner(signer); err != nil {
		return nil, err
	}

	return &KeyManager{
		Verifier: NewVerifierEdDSA(keyset, issuer),
		KeySet:   keyset,
		signers:  []Signer{signer},
	}, nil
}

// Algorithm returns the signing algorithm being used.
func (km *KeyManager) Algorithm() string {
	return AlgorithmEdDSA
}

// IsReady returns true if the KeyManager has valid keys loaded.
func (km *KeyManager) IsReady() bool {
	return km.KeySet.IsReady()
}

// GetSigner returns a randomly selected signer from the available signing keys.
func (km *KeyManager) GetSigner() Signer {
	km.mu.RLock()
	defer km.mu.RUnlock()

	if len(km.signers) == 0 {
		return nil
	}

	if len(km.signers) == 1 {
		return km.signers[0]
	}

	return km.signers[rand.IntN(len(km.signers))]
}

// NumSigners returns the number of active signing keys.
func (km *KeyManager) NumSigners() int {
	km.mu.RLock()
	defer km.mu.RUnlock()
	return len(km.signers)
}

// Sign signs claims with one of the active keys.
func (km *KeyManager) Sign(c Claims) (string, error) {
	s := km.GetSigner()
	if s == nil {
		return "", fmt.Errorf("jwtx: no signing keys")
	}
	return s.Sign(c)
}

// Verify checks a token against every key this manager has issued with.
func (km *KeyManager) Verify(token string) (Claims, error) {
	return km.Verifier.Verify(token)
}

// generateRandomKeyID creates a random key identifier.
// Format: "clinic-{random-token}" where random-token is a 128-bit secure token.
func generateRandomKeyID() (string, error) {
	token, err := cryptox.RandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate random key ID: %w", err)
	}
	return fmt.Sprintf("clinic-%s", token), nil
}

// keyIDFromPEM derives a stable kid for a persisted key.
func keyIDFromPEM(pemKey []byte) (string, error) {
	if len(pemKey) == 0 {
		return "", fmt.Errorf("jwtx: empty key")
	}
	return "clinic-" + cryptox.Fingerprint(pemKey)[:16], nil
}
