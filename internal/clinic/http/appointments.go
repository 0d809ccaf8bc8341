package http

import (
	"net/http"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/service"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
	"github.com/aussiebroadwan/clinic/pkg/idx"
)

type AppointmentsHandler struct {
	BookingService *service.BookingService
	Debug          bool
}

// HandleCreate books a slot for the caller.
//
//	@Summary		Book an appointment
//	@Description	Books a pending appointment. Each (date, time) slot holds at most one active booking.
//	@Tags			Appointments
//	@Security		CookieAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clinicsdk.CreateAppointmentRequest	true	"Service, date (YYYY-MM-DD) and slot"
//	@Success		201		{object}	clinicsdk.AppointmentResponse		"Appointment booked"
//	@Failure		400		{object}	httpx.ErrorResponse					"Invalid input or slot already booked"
//	@Failure		401		{object}	httpx.ErrorResponse					"Missing or invalid token"
//	@Failure		500		{object}	httpx.ErrorResponse					"Internal server error"
//	@Router			/api/appointments [post].
func (h *AppointmentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	var req clinicsdk.CreateAppointmentRequest
	if err := httpx.DecodeJSON(r, &req, false); err != nil {
		writeServiceError(w, r, err, "", h.Debug)
		return
	}

	a, err := h.BookingService.Create(r.Context(), p.UserID, service.CreateAppointmentInput{
		ServiceName: domain.ServiceName(req.ServiceName),
		Date:        req.Date,
		Time:        domain.TimeSlot(req.Time),
		Notes:       req.Notes,
	})
	if err != nil {
		writeServiceError(w, r, err, "", h.Debug)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, clinicsdk.AppointmentResponse{Success: true, Appointment: toAppointment(a)})
}

// HandleListMine lists the caller's appointments.
//
//	@Summary		My appointments
//	@Description	Every appointment the caller holds, newest date first.
//	@Tags			Appointments
//	@Security		CookieAuth
//	@Produce		json
//	@Success		200	{object}	clinicsdk.AppointmentListResponse	"Appointments"
//	@Failure		401	{object}	httpx.ErrorResponse					"Missing or invalid token"
//	@Failure		500	{object}	httpx.ErrorResponse					"Internal server error"
//	@Router			/api/appointments/my [get].
func (h *AppointmentsHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	list, err := h.BookingService.ListMine(r.Context(), p.UserID)
	if err != nil {
		writeServiceError(w, r, err, "", h.Debug)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clinicsdk.AppointmentListResponse{
		Success:      true,
		Count:        len(list),
		Appointments: toAppointments(list),
	})
}

// HandleAvailability reports which slots on a day are still free.
//
//	@Summary		Slot availability
//	@Description	Every clinic slot on the date and whether it can be booked. No owner details are revealed.
//	@Tags			Appointments
//	@Security		CookieAuth
//	@Produce		json
//	@Param			date	query		string							true	"Date in YYYY-MM-DD form"
//	@Success		200		{object}	clinicsdk.AvailabilityResponse	"Slots"
//	@Failure		400		{object}	httpx.ErrorResponse				"Invalid date"
//	@Failure		401		{object}	httpx.ErrorResponse				"Missing or invalid token"
//	@Router			/api/appointments/availability [get].
func (h *AppointmentsHandler) HandleAvailability(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.principal(w, r); !ok {
		return
	}

	date := r.URL.Query().Get("date")
	slots, err := h.BookingService.Availability(r.Context(), date)
	if err != nil {
		writeServiceError(w, r, err, "", h.Debug)
		return
	}

	canonical, _ := domain.ParseDate(date)
	httpx.WriteJSON(w, http.StatusOK, clinicsdk.AvailabilityResponse{
		Success: true,
		Date:    canonical,
		Slots:   toSlots(slots),
	})
}

// HandleGet returns one of the caller's appointments.
//
//	@Summary		Get an appointment
//	@Tags			Appointments
//	@Security		CookieAuth
//	@Produce		json
//	@Param			id	path		string							true	"Appointment ID"
//	@Success		200	{object}	clinicsdk.AppointmentResponse	"Appointment"
//	@Failure		401	{object}	httpx.ErrorResponse				"Missing or invalid token"
//	@Failure		403	{object}	httpx.ErrorResponse				"Owned by another user"
//	@Failure		404	{object}	httpx.ErrorResponse				"Not found"
//	@Router			/api/appointments/{id} [get].
func (h *AppointmentsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	a, err := h.BookingService.Get(r.Context(), p.UserID, id)
	if err != nil {
		writeServiceError(w, r, err, "access", h.Debug)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clinicsdk.AppointmentResponse{Success: true, Appointment: toAppointment(a)})
}

// HandleUpdate changes selected fields of one of the caller's appointments.
//
//	@Summary		Update an appointment
//	@Description	Partial update. Only serviceName, date, time, notes and status may be sent; any other field is rejected.
//	@Description	Status follows pending -> confirmed -> completed, and pending or confirmed -> cancelled.
//	@Tags			Appointments
//	@Security		CookieAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Appointment ID"
//	@Param			request	body		clinicsdk.UpdateAppointmentRequest	true	"Fields to change"
//	@Success		200		{object}	clinicsdk.AppointmentResponse		"Updated appointment"
//	@Failure		400		{object}	httpx.ErrorResponse					"Invalid input or slot already booked"
//	@Failure		401		{object}	httpx.ErrorResponse					"Missing or invalid token"
//	@Failure		403		{object}	httpx.ErrorResponse					"Owned by another user"
//	@Failure		404		{object}	httpx.ErrorResponse					"Not found"
//	@Failure		409		{object}	httpx.ErrorResponse					"Status does not allow this change"
//	@Router			/api/appointments/{id} [put].
func (h *AppointmentsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	var req clinicsdk.UpdateAppointmentRequest
	if err := httpx.DecodeJSON(r, &req, true); err != nil {
		writeServiceError(w, r, err, "", h.Debug)
		return
	}

	a, err := h.BookingService.Update(r.Context(), p.UserID, id, toPatch(req))
	if err != nil {
		writeServiceError(w, r, err, "update", h.Debug)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clinicsdk.AppointmentResponse{Success: true, Appointment: toAppointment(a)})
}

// HandleCancel cancels one of the caller's appointments.
//
//	@Summary		Cancel an appointment
//	@Description	Moves a pending or confirmed appointment to cancelled and frees its slot.
//	@Tags			Appointments
//	@Security		CookieAuth
//	@Produce		json
//	@Param			id	path		string						true	"Appointment ID"
//	@Success		200	{object}	clinicsdk.MessageResponse	"Cancelled"
//	@Failure		401	{object}	httpx.ErrorResponse			"Missing or invalid token"
//	@Failure		403	{object}	httpx.ErrorResponse			"Owned by another user"
//	@Failure		404	{object}	httpx.ErrorResponse			"Not found"
//	@Failure		409	{object}	httpx.ErrorResponse			"Already completed or cancelled"
//	@Router			/api/appointments/{id} [delete].
func (h *AppointmentsHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	if _, err := h.BookingService.Cancel(r.Context(), p.UserID, id); err != nil {
		writeServiceError(w, r, err, "cancel", h.Debug)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clinicsdk.MessageResponse{Success: true, Message: "Appointment cancelled successfully"})
}

func (h *AppointmentsHandler) principal(w http.ResponseWriter, r *http.Request) (httpx.Principal, bool) {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, service.ErrUnauthenticated, "", h.Debug)
	}
	return p, ok
}

// appointmentID parses the {id} path value. Anything that is not an ID
// cannot name an appointment, so it is a 404.
func (h *AppointmentsHandler) appointmentID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := idx.Parse(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, service.ErrNotFound, "", h.Debug)
		return "", false
	}
	return id.String(), true
}
