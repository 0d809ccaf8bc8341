package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/service"
	"github.com/aussiebroadwan/clinic/pkg/idx"
	"github.com/aussiebroadwan/clinic/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestNewHousekeepingService(t *testing.T) {
	f := newFixture(t)

	_, err := service.NewHousekeepingService(f.store, slogx.Discard(), "")
	require.NoError(t, err)

	_, err = service.NewHousekeepingService(f.store, slogx.Discard(), "*/15 * * * *")
	require.NoError(t, err)

	_, err = service.NewHousekeepingService(f.store, slogx.Discard(), "every tuesday")
	require.Error(t, err)
}

func TestHousekeepingCleanup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	live := f.signup(t, "Live", "live@example.com")
	gone := f.signup(t, "Gone", "gone@example.com")
	require.NoError(t, f.auth.Logout(ctx, gone.SessionID))

	now := time.Now().UTC()
	expired := domain.Session{
		ID:        idx.New().String(),
		UserID:    live.User.ID,
		ExpiresAt: now.Add(-time.Minute),
		CreatedAt: now.Add(-time.Hour),
	}
	require.NoError(t, f.store.Sessions().CreateSession(ctx, expired))

	hk, err := service.NewHousekeepingService(f.store, slogx.Discard(), "@hourly")
	require.NoError(t, err)

	require.Equal(t, int64(2), hk.Cleanup(ctx))

	// the live session survives and still authenticates
	_, err = f.auth.ResolveCaller(ctx, live.Token)
	require.NoError(t, err)

	require.Equal(t, int64(0), hk.Cleanup(ctx))
}

func TestHousekeepingStartStop(t *testing.T) {
	f := newFixture(t)

	hk, err := service.NewHousekeepingService(f.store, slogx.Discard(), "@hourly")
	require.NoError(t, err)

	hk.Start()
	hk.Stop() // must not hang
}
