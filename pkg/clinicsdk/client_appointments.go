package clinicsdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateAppointment books a slot for the signed-in user.
func (c *SDKClient) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*Appointment, error) {
	return c.appointmentCall(ctx, http.MethodPost, "/api/appointments", req, http.StatusCreated)
}

// GetAppointment returns one of the signed-in user's appointments.
func (c *SDKClient) GetAppointment(ctx context.Context, id string) (*Appointment, error) {
	return c.appointmentCall(ctx, http.MethodGet, "/api/appointments/"+url.PathEscape(id), nil, http.StatusOK)
}

// UpdateAppointment changes the fields set in req.
func (c *SDKClient) UpdateAppointment(ctx context.Context, id string, req UpdateAppointmentRequest) (*Appointment, error) {
	return c.appointmentCall(ctx, http.MethodPut, "/api/appointments/"+url.PathEscape(id), req, http.StatusOK)
}

// CancelAppointment cancels an appointment and frees its slot.
func (c *SDKClient) CancelAppointment(ctx context.Context, id string) (*MessageResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/api/appointments/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var out MessageResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// ListMyAppointments returns every appointment the signed-in user holds,
// newest date first.
func (c *SDKClient) ListMyAppointments(ctx context.Context) (*AppointmentListResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/appointments/my", nil)
	if err != nil {
		return nil, err
	}

	var out AppointmentListResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// Availability lists the slots on date and whether each can still be booked.
func (c *SDKClient) Availability(ctx context.Context, date string) (*AvailabilityResponse, error) {
	q := url.Values{"date": {date}}
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/appointments/availability?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var out AvailabilityResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *SDKClient) appointmentCall(ctx context.Context, method, path string, body any, expected int) (*Appointment, error) {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	var out AppointmentResponse
	if err := decodeJSON(resp, &out, expected); err != nil {
		return nil, err
	}

	return &out.Appointment, nil
}
