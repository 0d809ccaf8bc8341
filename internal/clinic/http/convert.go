package http

import (
	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/service"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
)

func toUser(u domain.User) clinicsdk.User {
	return clinicsdk.User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}

func toAppointment(a domain.Appointment) clinicsdk.Appointment {
	out := clinicsdk.Appointment{
		ID:          a.ID,
		UserID:      a.UserID,
		ServiceName: string(a.ServiceName),
		Date:        a.Date,
		Time:        string(a.Time),
		Status:      string(a.Status),
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.Owner != nil {
		out.User = &clinicsdk.User{
			ID:    a.Owner.ID,
			Name:  a.Owner.Name,
			Email: a.Owner.Email,
			Phone: a.Owner.Phone,
		}
	}
	return out
}

func toAppointments(list []domain.Appointment) []clinicsdk.Appointment {
	out := make([]clinicsdk.Appointment, 0, len(list))
	for _, a := range list {
		out = append(out, toAppointment(a))
	}
	return out
}

func toSlots(list []service.SlotAvailability) []clinicsdk.Slot {
	out := make([]clinicsdk.Slot, 0, len(list))
	for _, s := range list {
		out = append(out, clinicsdk.Slot{Time: string(s.Time), Available: s.Available})
	}
	return out
}

// toPatch copies the present request fields into a domain patch.
func toPatch(req clinicsdk.UpdateAppointmentRequest) domain.AppointmentPatch {
	var p domain.AppointmentPatch
	if req.ServiceName != nil {
		v := domain.ServiceName(*req.ServiceName)
		p.ServiceName = &v
	}
	if req.Date != nil {
		v := *req.Date
		p.Date = &v
	}
	if req.Time != nil {
		v := domain.TimeSlot(*req.Time)
		p.Time = &v
	}
	if req.Notes != nil {
		v := *req.Notes
		p.Notes = &v
	}
	if req.Status != nil {
		v := domain.Status(*req.Status)
		p.Status = &v
	}
	return p
}
