package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/clinic/pkg/cryptox"
	"github.com/aussiebroadwan/clinic/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestNewEphemeralKeyManager(t *testing.T) {
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:  "test-issuer",
		NumKeys: 1,
	})

	require.NoError(t, err)
	require.NotNil(t, km)
	require.NotNil(t, km.Verifier)
	require.NotNil(t, km.KeySet)
	require.Equal(t, jwtx.AlgorithmEdDSA, km.Algorithm())
	require.True(t, km.IsReady())
	require.Equal(t, 1, km.NumSigners())
	require.Contains(t, km.GetSigner().KID(), "clinic-")
}

func TestNewEphemeralKeyManager_MissingIssuer(t *testing.T) {
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{})
	require.Error(t, err)
	require.Nil(t, km)
	require.Contains(t, err.Error(), "Issuer is required")
}

func TestKeyManager_SignAndVerifyRoundTrip(t *testing.T) {
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer: "test-issuer",
	})
	require.NoError(t, err)

	now := time.Now().UTC()
	for range 10 {
		claims := jwtx.NewSessionClaims("user-123", "session-abc", 5*time.Minute, "test-issuer", "Test User", "t@example.com", now)

		token, err := km.Sign(claims)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		parsed, err := km.Verify(token)
		require.NoError(t, err)
		require.Equal(t, claims.Subject, parsed.Subject)
		require.Equal(t, claims.SID, parsed.SID)
	}
}

func TestKeyManager_TokensFromOtherInstanceRejected(t *testing.T) {
	a, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "test-issuer"})
	require.NoError(t, err)
	b, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "test-issuer"})
	require.NoError(t, err)

	token, err := a.Sign(jwtx.NewSessionClaims("u", "s", time.Minute, "test-issuer", "", "", time.Now().UTC()))
	require.NoError(t, err)

	_, err = b.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrNoKey)
}

func TestKeyManager_CustomNumKeys(t *testing.T) {
	tests := []struct {
		name     string
		numKeys  int
		expected int
	}{
		{"explicit 2 keys", 2, 2},
		{"explicit 5 keys", 5, 5},
		{"explicit 1 key", 1, 1},
		{"max capped at 10", 15, 10},
		{"zero defaults to 3", 0, 3},
		{"negative defaults to 3", -1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
				Issuer:  "test-issuer",
				NumKeys: tt.numKeys,
			})
			require.NoError(t, err)
			require.Equal(t, tt.expected, km.NumSigners())
		})
	}
}

func TestNewKeyManagerFromPEM(t *testing.T) {
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	first, err := jwtx.NewKeyManagerFromPEM("test-issuer", pemKey)
	require.NoError(t, err)
	require.Equal(t, 1, first.NumSigners())

	token, err := first.Sign(jwtx.NewSessionClaims("u", "s", time.Minute, "test-issuer", "", "", time.Now().UTC()))
	require.NoError(t, err)

	// same key, new process: token still verifies
	second, err := jwtx.NewKeyManagerFromPEM("test-issuer", pemKey)
	require.NoError(t, err)
	require.Equal(t, first.GetSigner().KID(), second.GetSigner().KID())

	claims, err := second.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "u", claims.Subject)

	_, err = jwtx.NewKeyManagerFromPEM("test-issuer", nil)
	require.Error(t, err)
	_, err = jwtx.NewKeyManagerFromPEM("", pemKey)
	require.Error(t, err)
}

func TestKeySet_IsReady(t *testing.T) {
	ks := jwtx.NewKeySet()
	require.False(t, ks.IsReady())

	_, err := ks.Get("missing")
	require.ErrorIs(t, err, jwtx.ErrNoKey)
	require.Error(t, ks.Add("", nil))
}
