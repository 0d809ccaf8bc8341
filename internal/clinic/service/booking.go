package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/pkg/idx"
	"github.com/aussiebroadwan/clinic/pkg/slogx"
)

// BookingService owns the appointment lifecycle for a single clinic. Every
// method takes the caller's user ID, already authenticated by the gateway.
type BookingService struct {
	Store store.Store
	Clock Clock
}

type CreateAppointmentInput struct {
	ServiceName domain.ServiceName
	Date        string
	Time        domain.TimeSlot
	Notes       string
}

// SlotAvailability is one slot on a day and whether it can still be booked.
type SlotAvailability struct {
	Time      domain.TimeSlot
	Available bool
}

// Create books a new pending appointment for ownerID.
func (s *BookingService) Create(ctx context.Context, ownerID string, in CreateAppointmentInput) (domain.Appointment, error) {
	l := slogx.FromContext(ctx)

	date, err := validateCreate(in)
	if err != nil {
		return domain.Appointment{}, err
	}

	now := s.Clock.now()
	a := domain.Appointment{
		ID:          idx.NewAt(now).String(),
		UserID:      ownerID,
		ServiceName: in.ServiceName,
		Date:        date,
		Time:        in.Time,
		Status:      domain.StatusPending,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = withTx(ctx, s.Store, "create appointment", func(tx store.Tx) error {
		if err := ensureSlotFree(ctx, tx, a.Date, a.Time, ""); err != nil {
			return err
		}

		if err := tx.Appointments().CreateAppointment(ctx, a); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrSlotConflict
			}
			return storeErr("create appointment", err)
		}

		owner, err := tx.Users().GetUserByID(ctx, ownerID)
		if err != nil {
			return storeErr("load owner", err)
		}
		a.Owner = owner.Owner()
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotConflict) {
			l.Info("slot already booked", slog.String("date", a.Date), slog.String("time", string(a.Time)))
		}
		return domain.Appointment{}, err
	}

	l.Info("appointment booked",
		slog.String("appointment_id", a.ID),
		slog.String("date", a.Date),
		slog.String("time", string(a.Time)),
	)
	return a, nil
}

// ListMine returns every appointment ownerID holds, newest date first.
func (s *BookingService) ListMine(ctx context.Context, ownerID string) ([]domain.Appointment, error) {
	list, err := s.Store.Appointments().ListAppointmentsByUser(ctx, ownerID)
	if err != nil {
		return nil, storeErr("list appointments", err)
	}

	owner, err := s.owner(ctx, s.Store, ownerID)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Owner = owner
	}
	return list, nil
}

// Get returns one appointment if callerID owns it.
func (s *BookingService) Get(ctx context.Context, callerID, id string) (domain.Appointment, error) {
	a, err := s.loadOwned(ctx, s.Store, callerID, id)
	if err != nil {
		return domain.Appointment{}, err
	}

	a.Owner, err = s.owner(ctx, s.Store, a.UserID)
	if err != nil {
		return domain.Appointment{}, err
	}
	return a, nil
}

// Update applies patch to an appointment callerID owns. Moving to another
// date or time re-checks that the new slot is free.
func (s *BookingService) Update(ctx context.Context, callerID, id string, patch domain.AppointmentPatch) (domain.Appointment, error) {
	l := slogx.FromContext(ctx)

	var out domain.Appointment
	err := withTx(ctx, s.Store, "update appointment", func(tx store.Tx) error {
		current, err := s.loadOwned(ctx, tx, callerID, id)
		if err != nil {
			return err
		}

		if patch.IsEmpty() {
			return invalidf("no fields to update")
		}
		if current.Status.Terminal() {
			return fmt.Errorf("%w: appointment is %s", ErrInvalidTransition, current.Status)
		}

		next, err := patch.Apply(current)
		if err != nil {
			return patchErr(err)
		}
		next.UpdatedAt = s.Clock.now()

		if patch.MovesSlot(current) && next.HoldsSlot() {
			if err := ensureSlotFree(ctx, tx, next.Date, next.Time, next.ID); err != nil {
				return err
			}
		}

		if err := tx.Appointments().UpdateAppointment(ctx, next); err != nil {
			switch {
			case errors.Is(err, store.ErrAlreadyExists):
				return ErrSlotConflict
			case errors.Is(err, store.ErrNotFound):
				return ErrNotFound
			}
			return storeErr("update appointment", err)
		}

		next.Owner, err = s.owner(ctx, tx, next.UserID)
		if err != nil {
			return err
		}
		out = next
		return nil
	})
	if err != nil {
		return domain.Appointment{}, err
	}

	l.Info("appointment updated", slog.String("appointment_id", out.ID), slog.String("status", string(out.Status)))
	return out, nil
}

// Cancel moves an appointment callerID owns to cancelled, freeing its slot.
func (s *BookingService) Cancel(ctx context.Context, callerID, id string) (domain.Appointment, error) {
	status := domain.StatusCancelled
	var out domain.Appointment

	err := withTx(ctx, s.Store, "cancel appointment", func(tx store.Tx) error {
		current, err := s.loadOwned(ctx, tx, callerID, id)
		if err != nil {
			return err
		}

		if !current.Status.CanTransitionTo(status) {
			return fmt.Errorf("%w: appointment is already %s", ErrInvalidTransition, current.Status)
		}

		next, err := domain.AppointmentPatch{Status: &status}.Apply(current)
		if err != nil {
			return patchErr(err)
		}
		next.UpdatedAt = s.Clock.now()

		if err := tx.Appointments().UpdateAppointment(ctx, next); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotFound
			}
			return storeErr("cancel appointment", err)
		}
		out = next
		return nil
	})
	if err != nil {
		return domain.Appointment{}, err
	}

	slogx.FromContext(ctx).Info("appointment cancelled", slog.String("appointment_id", out.ID))
	return out, nil
}

// Availability reports every slot on date and whether it is still free.
func (s *BookingService) Availability(ctx context.Context, date string) ([]SlotAvailability, error) {
	date, err := domain.ParseDate(date)
	if err != nil {
		return nil, invalid(err)
	}

	booked, err := s.Store.Appointments().ListActiveAppointmentsByDate(ctx, date)
	if err != nil {
		return nil, storeErr("list booked slots", err)
	}

	taken := make(map[domain.TimeSlot]bool, len(booked))
	for _, a := range booked {
		taken[a.Time] = true
	}

	out := make([]SlotAvailability, 0, len(domain.TimeSlots))
	for _, slot := range domain.TimeSlots {
		out = append(out, SlotAvailability{Time: slot, Available: !taken[slot]})
	}
	return out, nil
}

// loadOwned fetches id and checks callerID owns it.
func (s *BookingService) loadOwned(ctx context.Context, st store.Store, callerID, id string) (domain.Appointment, error) {
	a, err := st.Appointments().GetAppointmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Appointment{}, ErrNotFound
		}
		return domain.Appointment{}, storeErr("load appointment", err)
	}

	if a.UserID != callerID {
		slogx.FromContext(ctx).Warn("appointment owned by another user",
			slog.String("appointment_id", id),
			slog.String("caller_id", callerID),
		)
		return domain.Appointment{}, ErrForbidden
	}
	return a, nil
}

func (s *BookingService) owner(ctx context.Context, st store.Store, userID string) (*domain.Owner, error) {
	u, err := st.Users().GetUserByID(ctx, userID)
	if err != nil {
		return nil, storeErr("load owner", err)
	}
	return u.Owner(), nil
}

// ensureSlotFree fails with ErrSlotConflict when an active appointment other
// than exceptID already holds (date, slot).
func ensureSlotFree(ctx context.Context, st store.Store, date string, slot domain.TimeSlot, exceptID string) error {
	held, err := st.Appointments().GetActiveAppointmentBySlot(ctx, date, slot)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil
	case err != nil:
		return storeErr("check slot", err)
	case held.ID == exceptID:
		return nil
	}
	return ErrSlotConflict
}

func validateCreate(in CreateAppointmentInput) (string, error) {
	if in.ServiceName == "" {
		return "", invalidf("serviceName is required")
	}
	if !in.ServiceName.Valid() {
		return "", invalid(domain.ErrInvalidServiceName)
	}

	if strings.TrimSpace(in.Date) == "" {
		return "", invalidf("date is required")
	}
	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return "", invalid(err)
	}

	if in.Time == "" {
		return "", invalidf("time is required")
	}
	if !in.Time.Valid() {
		return "", invalid(domain.ErrInvalidTimeSlot)
	}
	return date, nil
}

// patchErr sorts domain patch errors into the service taxonomy.
func patchErr(err error) error {
	if errors.Is(err, domain.ErrInvalidTransition) {
		return fmt.Errorf("%w: %w", ErrInvalidTransition, err)
	}
	return invalid(err)
}
