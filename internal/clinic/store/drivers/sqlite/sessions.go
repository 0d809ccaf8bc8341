package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/store/drivers/sqlite/gen"
)

type sessionsRepo struct {
	q *gen.Queries
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	return mapConstraint(r.q.CreateSession(ctx, gen.CreateSessionParams{
		ID:        s.ID,
		UserID:    s.UserID,
		ExpiresAt: s.ExpiresAt.UTC(),
		CreatedAt: s.CreatedAt.UTC(),
	}))
}

func (r *sessionsRepo) GetSessionByID(ctx context.Context, id string) (domain.Session, error) {
	row, err := r.q.GetSessionByID(ctx, id)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	return mapSession(row), nil
}

func (r *sessionsRepo) RevokeSession(ctx context.Context, id string) error {
	return r.q.RevokeSession(ctx, gen.RevokeSessionParams{
		RevokedAt: sql.NullTime{Time: time.Now().UTC(), Valid: true},
		ID:        id,
	})
}

func (r *sessionsRepo) DeleteStaleSessions(ctx context.Context) (int64, error) {
	return r.q.DeleteStaleSessions(ctx, time.Now().UTC())
}
