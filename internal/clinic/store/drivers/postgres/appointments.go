package postgres

import (
	"context"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/jackc/pgx/v5"
)

const appointmentColumns = `id, user_id, service_name, date, time_slot, status, notes, created_at, updated_at`

type appointmentsRepo struct {
	q querier
}

func scanAppointment(row pgx.Row) (domain.Appointment, error) {
	var (
		a                     domain.Appointment
		service, slot, status string
	)
	err := row.Scan(&a.ID, &a.UserID, &service, &a.Date, &slot, &status, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Appointment{}, err
	}
	a.ServiceName = domain.ServiceName(service)
	a.Time = domain.TimeSlot(slot)
	a.Status = domain.Status(status)
	return a, nil
}

func collectAppointments(rows pgx.Rows) ([]domain.Appointment, error) {
	defer rows.Close()

	out := []domain.Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *appointmentsRepo) CreateAppointment(ctx context.Context, a domain.Appointment) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO appointments (`+appointmentColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, a.UserID, string(a.ServiceName), a.Date, string(a.Time), string(a.Status),
		a.Notes, a.CreatedAt, a.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *appointmentsRepo) GetAppointmentByID(ctx context.Context, id string) (domain.Appointment, error) {
	a, err := scanAppointment(r.q.QueryRow(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id))
	return a, mapNotFound(err)
}

func (r *appointmentsRepo) ListAppointmentsByUser(ctx context.Context, userID string) ([]domain.Appointment, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+appointmentColumns+` FROM appointments
		 WHERE user_id = $1
		 ORDER BY date DESC, created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	return collectAppointments(rows)
}

func (r *appointmentsRepo) GetActiveAppointmentBySlot(
	ctx context.Context,
	date string,
	slot domain.TimeSlot,
) (domain.Appointment, error) {
	a, err := scanAppointment(r.q.QueryRow(ctx,
		`SELECT `+appointmentColumns+` FROM appointments
		 WHERE date = $1 AND time_slot = $2 AND status <> 'cancelled'
		 LIMIT 1`, date, string(slot)))
	return a, mapNotFound(err)
}

func (r *appointmentsRepo) ListActiveAppointmentsByDate(ctx context.Context, date string) ([]domain.Appointment, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+appointmentColumns+` FROM appointments
		 WHERE date = $1 AND status <> 'cancelled'
		 ORDER BY created_at`, date)
	if err != nil {
		return nil, err
	}
	return collectAppointments(rows)
}

func (r *appointmentsRepo) UpdateAppointment(ctx context.Context, a domain.Appointment) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE appointments
		 SET service_name = $1, date = $2, time_slot = $3, status = $4, notes = $5, updated_at = $6
		 WHERE id = $7`,
		string(a.ServiceName), a.Date, string(a.Time), string(a.Status), a.Notes, a.UpdatedAt, a.ID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
