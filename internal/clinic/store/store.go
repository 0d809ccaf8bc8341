package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and so a transaction can never start another one.
type Store interface {
	Users() Users
	Appointments() Appointments
	Sessions() Sessions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Inside fn only
	// the tx handle may be used; the outer Store can block on a single
	// connection driver.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and signup duplicate checks.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error
}

type Appointments interface {
	// CreateAppointment inserts a new appointment. Returns ErrAlreadyExists
	// when another active appointment already holds the (date, time) slot.
	CreateAppointment(ctx context.Context, a domain.Appointment) error

	// GetAppointmentByID returns an appointment regardless of owner.
	GetAppointmentByID(ctx context.Context, id string) (domain.Appointment, error)

	// ListAppointmentsByUser returns the owner's appointments, newest date
	// first, then newest created first.
	ListAppointmentsByUser(ctx context.Context, userID string) ([]domain.Appointment, error)

	// GetActiveAppointmentBySlot returns the non-cancelled appointment
	// holding (date, time), or ErrNotFound.
	GetActiveAppointmentBySlot(ctx context.Context, date string, slot domain.TimeSlot) (domain.Appointment, error)

	// ListActiveAppointmentsByDate returns every non-cancelled appointment on date.
	ListActiveAppointmentsByDate(ctx context.Context, date string) ([]domain.Appointment, error)

	// UpdateAppointment persists the mutable fields and bumps updated_at.
	// Returns ErrNotFound for unknown ids and ErrAlreadyExists on slot clashes.
	UpdateAppointment(ctx context.Context, a domain.Appointment) error
}

type Sessions interface {
	// CreateSession stores a freshly issued session.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByID returns a session by id, active or not.
	GetSessionByID(ctx context.Context, id string) (domain.Session, error)

	// RevokeSession sets revoked_at. Revoking twice is not an error.
	RevokeSession(ctx context.Context, id string) error

	// DeleteStaleSessions removes expired and revoked sessions (housekeeping)
	// and returns how many were deleted.
	DeleteStaleSessions(ctx context.Context) (int64, error)
}
