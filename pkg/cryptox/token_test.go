package cryptox_test

import (
	"testing"

	"github.com/aussiebroadwan/clinic/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestRandomString(t *testing.T) {
	seen := make(map[string]bool)
	for range 50 {
		s, err := cryptox.RandomString(16)
		require.NoError(t, err)
		require.Len(t, s, 22)
		require.False(t, seen[s], "duplicate value")
		seen[s] = true
	}

	for _, n := range []int{0, -1} {
		s, err := cryptox.RandomString(n)
		require.Error(t, err)
		require.Empty(t, s)
	}
}

func TestFingerprint(t *testing.T) {
	a := cryptox.Fingerprint([]byte("key-one"))
	require.Equal(t, a, cryptox.Fingerprint([]byte("key-one")))
	require.NotEqual(t, a, cryptox.Fingerprint([]byte("key-two")))
	require.Len(t, a, 43)
}
