package domain

import (
	"errors"
	"slices"
	"strings"
	"time"
)

// DateLayout is the wire and storage form of an appointment date.
const DateLayout = "2006-01-02"

var (
	ErrInvalidServiceName = errors.New("serviceName must be one of the offered services")
	ErrInvalidDate        = errors.New("date must be a calendar date in YYYY-MM-DD form")
	ErrInvalidTimeSlot    = errors.New("time must be one of the clinic time slots")
	ErrInvalidStatus      = errors.New("status must be pending, confirmed, completed or cancelled")
	ErrInvalidTransition  = errors.New("status transition not allowed")
)

type ServiceName string

const (
	ServiceFUEHairTransplant ServiceName = "FUE Hair Transplant"
	ServicePRPTreatment      ServiceName = "PRP Treatment"
	ServiceConsultation      ServiceName = "Consultation"
	ServiceHairAnalysis      ServiceName = "Hair Analysis"
	ServiceFollowUp          ServiceName = "Follow-up"
)

// Services lists every bookable service in display order.
var Services = []ServiceName{
	ServiceFUEHairTransplant,
	ServicePRPTreatment,
	ServiceConsultation,
	ServiceHairAnalysis,
	ServiceFollowUp,
}

func (s ServiceName) Valid() bool { return slices.Contains(Services, s) }

// TimeSlot is one of the fixed clinic slot labels. Each slot is a whole hour.
type TimeSlot string

const (
	Slot0900 TimeSlot = "09:00 AM"
	Slot1000 TimeSlot = "10:00 AM"
	Slot1100 TimeSlot = "11:00 AM"
	Slot1200 TimeSlot = "12:00 PM"
	Slot1400 TimeSlot = "02:00 PM"
	Slot1500 TimeSlot = "03:00 PM"
	Slot1600 TimeSlot = "04:00 PM"
	Slot1700 TimeSlot = "05:00 PM"
)

// TimeSlots lists the slots in the order of the clinic day. There is no
// 01:00 PM slot (lunch).
var TimeSlots = []TimeSlot{
	Slot0900, Slot1000, Slot1100, Slot1200,
	Slot1400, Slot1500, Slot1600, Slot1700,
}

func (t TimeSlot) Valid() bool { return slices.Contains(TimeSlots, t) }

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// transitions is the appointment lifecycle. Anything missing is rejected.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: nil,
	StatusCancelled: nil,
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool {
	return s.Valid() && len(transitions[s]) == 0
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

type Appointment struct {
	ID          string
	UserID      string // owner, immutable after create
	ServiceName ServiceName
	Date        string // YYYY-MM-DD, no time of day
	Time        TimeSlot
	Status      Status
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Owner is resolved by the booking service on read paths; nil otherwise.
	Owner *Owner
}

// HoldsSlot reports whether the appointment occupies its (date, time) slot.
func (a Appointment) HoldsSlot() bool { return a.Status != StatusCancelled }

// AppointmentPatch carries the fields a caller may change on an appointment.
// Nil fields are left untouched. Owner and creation time are not patchable.
type AppointmentPatch struct {
	ServiceName *ServiceName `json:"serviceName,omitempty"`
	Date        *string      `json:"date,omitempty"`
	Time        *TimeSlot    `json:"time,omitempty"`
	Notes       *string      `json:"notes,omitempty"`
	Status      *Status      `json:"status,omitempty"`
}

func (p AppointmentPatch) IsEmpty() bool {
	return p.ServiceName == nil && p.Date == nil && p.Time == nil && p.Notes == nil && p.Status == nil
}

// MovesSlot reports whether applying p to a changes its (date, time).
func (p AppointmentPatch) MovesSlot(a Appointment) bool {
	if p.Date != nil && strings.TrimSpace(*p.Date) != a.Date {
		return true
	}
	return p.Time != nil && *p.Time != a.Time
}

// Apply validates p against a and returns the patched copy. Status changes
// follow the lifecycle table; setting the current status again is a no-op.
func (p AppointmentPatch) Apply(a Appointment) (Appointment, error) {
	out := a
	out.Owner = nil

	if p.ServiceName != nil {
		if !p.ServiceName.Valid() {
			return Appointment{}, ErrInvalidServiceName
		}
		out.ServiceName = *p.ServiceName
	}

	if p.Date != nil {
		date, err := ParseDate(*p.Date)
		if err != nil {
			return Appointment{}, err
		}
		out.Date = date
	}

	if p.Time != nil {
		if !p.Time.Valid() {
			return Appointment{}, ErrInvalidTimeSlot
		}
		out.Time = *p.Time
	}

	if p.Notes != nil {
		out.Notes = strings.TrimSpace(*p.Notes)
	}

	if p.Status != nil && *p.Status != a.Status {
		if !p.Status.Valid() {
			return Appointment{}, ErrInvalidStatus
		}
		if !a.Status.CanTransitionTo(*p.Status) {
			return Appointment{}, ErrInvalidTransition
		}
		out.Status = *p.Status
	}

	return out, nil
}

// ParseDate validates a YYYY-MM-DD calendar date and returns it in canonical
// form. Out of range days such as 2025-02-30 are rejected.
func ParseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", ErrInvalidDate
	}
	return t.Format(DateLayout), nil
}
