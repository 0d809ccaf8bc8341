package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/internal/clinic/store/drivers/postgres"
	"github.com/aussiebroadwan/clinic/pkg/idx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgres starts a throwaway PostgreSQL container and returns a
// migrated store. Skips when Docker is not available.
func setupPostgres(t *testing.T) *postgres.Store {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "clinic",
			"POSTGRES_PASSWORD": "clinic",
			"POSTGRES_DB":       "clinic",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	url := fmt.Sprintf("postgres://clinic:clinic@%s:%s/clinic?sslmode=disable", host, port.Port())
	st, err := postgres.NewStore(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestPostgresStore(t *testing.T) {
	st := setupPostgres(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	u := domain.User{
		ID:           idx.New().String(),
		Name:         "Pat",
		Email:        "pat@example.com",
		PasswordHash: "$argon2id$dummy",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.Users().CreateUser(ctx, u))
	require.ErrorIs(t, st.Users().CreateUser(ctx, u), store.ErrAlreadyExists)

	got, err := st.Users().GetUserByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Empty(t, got.Phone)

	t.Run("slot uniqueness under concurrency", func(t *testing.T) {
		const workers = 8
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
			conflicts int
		)

		for i := range workers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				a := domain.Appointment{
					ID:          idx.New().String(),
					UserID:      u.ID,
					ServiceName: domain.ServiceConsultation,
					Date:        "2025-06-01",
					Time:        domain.Slot1000,
					Status:      domain.StatusPending,
					CreatedAt:   now.Add(time.Duration(i) * time.Millisecond),
					UpdatedAt:   now,
				}
				err := st.WithTx(ctx, func(tx store.Tx) error {
					return tx.Appointments().CreateAppointment(ctx, a)
				})

				mu.Lock()
				defer mu.Unlock()
				if err == nil {
					successes++
				} else if errors.Is(err, store.ErrAlreadyExists) {
					conflicts++
				}
			}(i)
		}
		wg.Wait()

		require.Equal(t, 1, successes)
		require.Equal(t, workers-1, conflicts)
	})

	t.Run("list ordering and sessions", func(t *testing.T) {
		a := domain.Appointment{
			ID:          idx.New().String(),
			UserID:      u.ID,
			ServiceName: domain.ServiceFollowUp,
			Date:        "2025-07-01",
			Time:        domain.Slot0900,
			Status:      domain.StatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		require.NoError(t, st.Appointments().CreateAppointment(ctx, a))

		list, err := st.Appointments().ListAppointmentsByUser(ctx, u.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, a.ID, list[0].ID)

		s := domain.Session{ID: idx.New().String(), UserID: u.ID, ExpiresAt: now.Add(time.Hour), CreatedAt: now}
		require.NoError(t, st.Sessions().CreateSession(ctx, s))
		require.NoError(t, st.Sessions().RevokeSession(ctx, s.ID))

		n, err := st.Sessions().DeleteStaleSessions(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(1), n)
	})
}
