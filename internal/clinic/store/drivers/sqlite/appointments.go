package sqlite

import (
	"context"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/internal/clinic/store/drivers/sqlite/gen"
)

type appointmentsRepo struct {
	q *gen.Queries
}

func (r *appointmentsRepo) CreateAppointment(ctx context.Context, a domain.Appointment) error {
	err := r.q.CreateAppointment(ctx, gen.CreateAppointmentParams{
		ID:          a.ID,
		UserID:      a.UserID,
		ServiceName: string(a.ServiceName),
		Date:        a.Date,
		TimeSlot:    string(a.Time),
		Status:      string(a.Status),
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt.UTC(),
		UpdatedAt:   a.UpdatedAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *appointmentsRepo) GetAppointmentByID(ctx context.Context, id string) (domain.Appointment, error) {
	row, err := r.q.GetAppointmentByID(ctx, id)
	if err != nil {
		return domain.Appointment{}, mapNotFound(err)
	}
	return mapAppointment(row), nil
}

func (r *appointmentsRepo) ListAppointmentsByUser(ctx context.Context, userID string) ([]domain.Appointment, error) {
	rows, err := r.q.ListAppointmentsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapAppointments(rows), nil
}

func (r *appointmentsRepo) GetActiveAppointmentBySlot(
	ctx context.Context,
	date string,
	slot domain.TimeSlot,
) (domain.Appointment, error) {
	row, err := r.q.GetActiveAppointmentBySlot(ctx, gen.GetActiveAppointmentBySlotParams{
		Date:     date,
		TimeSlot: string(slot),
	})
	if err != nil {
		return domain.Appointment{}, mapNotFound(err)
	}
	return mapAppointment(row), nil
}

func (r *appointmentsRepo) ListActiveAppointmentsByDate(ctx context.Context, date string) ([]domain.Appointment, error) {
	rows, err := r.q.ListActiveAppointmentsByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return mapAppointments(rows), nil
}

func (r *appointmentsRepo) UpdateAppointment(ctx context.Context, a domain.Appointment) error {
	n, err := r.q.UpdateAppointment(ctx, gen.UpdateAppointmentParams{
		ServiceName: string(a.ServiceName),
		Date:        a.Date,
		TimeSlot:    string(a.Time),
		Status:      string(a.Status),
		Notes:       a.Notes,
		UpdatedAt:   a.UpdatedAt.UTC(),
		ID:          a.ID,
	})
	if err != nil {
		return mapConstraint(err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
