package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	clinichttp "github.com/aussiebroadwan/clinic/internal/clinic/http"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/stretchr/testify/require"
)

func consultation(date, slot string) clinicsdk.CreateAppointmentRequest {
	return clinicsdk.CreateAppointmentRequest{
		ServiceName: "Consultation",
		Date:        date,
		Time:        slot,
	}
}

func strptr(s string) *string { return &s }

func TestAppointmentsRequireAuth(t *testing.T) {
	srv := newServer(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/appointments"},
		{http.MethodGet, "/api/appointments/my"},
		{http.MethodGet, "/api/appointments/availability?date=2025-06-01"},
		{http.MethodGet, "/api/appointments/01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV"},
		{http.MethodPut, "/api/appointments/01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV"},
		{http.MethodDelete, "/api/appointments/01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			resp := rawRequest(t, tc.method, srv.URL+tc.path, `{}`, nil)
			require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, false, body["success"])
			require.Equal(t, clinicsdk.ErrorCodeUnauthenticated, body["error"])
		})
	}
}

// Two patients competing for the same slot, end to end through the API.
func TestBookingFlow(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()
	a, userA := srv.signedIn(t, "A", "a@example.com")
	b, _ := srv.signedIn(t, "B", "b@example.com")

	appt, err := a.CreateAppointment(ctx, consultation("2025-06-01", "10:00 AM"))
	require.NoError(t, err)
	require.Equal(t, "pending", appt.Status)
	require.Equal(t, userA.ID, appt.UserID)
	require.NotNil(t, appt.User)
	require.Equal(t, "a@example.com", appt.User.Email)

	_, err = b.GetAppointment(ctx, appt.ID)
	apiErr := requireAPIError(t, err, http.StatusForbidden, clinicsdk.ErrorCodeForbidden)
	require.Equal(t, "Not authorized to access this appointment", apiErr.Message)

	_, err = b.CreateAppointment(ctx, consultation("2025-06-01", "10:00 AM"))
	apiErr = requireAPIError(t, err, http.StatusBadRequest, clinicsdk.ErrorCodeSlotTaken)
	require.Equal(t, "This time slot is already booked. Please choose another time.", apiErr.Message)

	msg, err := a.CancelAppointment(ctx, appt.ID)
	require.NoError(t, err)
	require.True(t, msg.Success)
	require.Equal(t, "Appointment cancelled successfully", msg.Message)

	retry, err := b.CreateAppointment(ctx, consultation("2025-06-01", "10:00 AM"))
	require.NoError(t, err)
	require.Equal(t, "pending", retry.Status)

	mine, err := a.ListMyAppointments(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, mine.Count)
	require.Equal(t, "cancelled", mine.Appointments[0].Status)
}

func TestGetAppointment(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()
	a, _ := srv.signedIn(t, "A", "a@example.com")

	appt, err := a.CreateAppointment(ctx, clinicsdk.CreateAppointmentRequest{
		ServiceName: "Hair Analysis",
		Date:        "2025-06-03",
		Time:        "02:00 PM",
		Notes:       "  first visit ",
	})
	require.NoError(t, err)
	require.Equal(t, "first visit", appt.Notes)

	got, err := a.GetAppointment(ctx, appt.ID)
	require.NoError(t, err)
	require.Equal(t, appt.ID, got.ID)
	require.Equal(t, "Hair Analysis", got.ServiceName)
	require.Equal(t, "2025-06-03", got.Date)
	require.Equal(t, "02:00 PM", got.Time)
	require.NotNil(t, got.User)

	_, err = a.GetAppointment(ctx, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV")
	apiErr := requireAPIError(t, err, http.StatusNotFound, clinicsdk.ErrorCodeNotFound)
	require.Equal(t, "Appointment not found", apiErr.Message)

	_, err = a.GetAppointment(ctx, "not-an-id")
	requireAPIError(t, err, http.StatusNotFound, clinicsdk.ErrorCodeNotFound)
}

func TestCreateValidation(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()
	a, _ := srv.signedIn(t, "A", "a@example.com")

	for name, req := range map[string]clinicsdk.CreateAppointmentRequest{
		"missing service": {Date: "2025-06-01", Time: "09:00 AM"},
		"unknown service": {ServiceName: "Massage", Date: "2025-06-01", Time: "09:00 AM"},
		"bad date":        {ServiceName: "Consultation", Date: "June 1", Time: "09:00 AM"},
		"unknown slot":    {ServiceName: "Consultation", Date: "2025-06-01", Time: "01:00 PM"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := a.CreateAppointment(ctx, req)
			apiErr := requireAPIError(t, err, http.StatusBadRequest, clinicsdk.ErrorCodeValidation)
			require.NotEmpty(t, apiErr.Message)
			require.NotEmpty(t, apiErr.Debug)
		})
	}
}

func TestUpdateAppointment(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()
	a, _ := srv.signedIn(t, "A", "a@example.com")
	b, _ := srv.signedIn(t, "B", "b@example.com")

	appt, err := a.CreateAppointment(ctx, consultation("2025-06-01", "10:00 AM"))
	require.NoError(t, err)
	_, err = b.CreateAppointment(ctx, consultation("2025-06-01", "11:00 AM"))
	require.NoError(t, err)

	t.Run("partial", func(t *testing.T) {
		got, err := a.UpdateAppointment(ctx, appt.ID, clinicsdk.UpdateAppointmentRequest{Notes: strptr("bring scans")})
		require.NoError(t, err)
		require.Equal(t, "bring scans", got.Notes)
		require.Equal(t, "10:00 AM", got.Time)
		require.Equal(t, "Consultation", got.ServiceName)
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		for _, body := range []string{
			`{"userId":"01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV"}`,
			`{"createdAt":"2020-01-01T00:00:00Z"}`,
			`{"notes":"x","owner":"me"}`,
		} {
			resp := rawRequest(t, http.MethodPut, srv.URL+"/api/appointments/"+appt.ID, body, map[string]string{
				"Authorization": "Bearer " + a.Cookie("token"),
			})
			require.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		}

		got, err := a.GetAppointment(ctx, appt.ID)
		require.NoError(t, err)
		require.Equal(t, "bring scans", got.Notes)
	})

	t.Run("empty patch", func(t *testing.T) {
		_, err := a.UpdateAppointment(ctx, appt.ID, clinicsdk.UpdateAppointmentRequest{})
		requireAPIError(t, err, http.StatusBadRequest, clinicsdk.ErrorCodeValidation)
	})

	t.Run("move onto a taken slot", func(t *testing.T) {
		_, err := a.UpdateAppointment(ctx, appt.ID, clinicsdk.UpdateAppointmentRequest{Time: strptr("11:00 AM")})
		requireAPIError(t, err, http.StatusBadRequest, clinicsdk.ErrorCodeSlotTaken)
	})

	t.Run("non-owner", func(t *testing.T) {
		_, err := b.UpdateAppointment(ctx, appt.ID, clinicsdk.UpdateAppointmentRequest{Notes: strptr("hijack")})
		apiErr := requireAPIError(t, err, http.StatusForbidden, clinicsdk.ErrorCodeForbidden)
		require.Equal(t, "Not authorized to update this appointment", apiErr.Message)

		_, err = b.CancelAppointment(ctx, appt.ID)
		apiErr = requireAPIError(t, err, http.StatusForbidden, clinicsdk.ErrorCodeForbidden)
		require.Equal(t, "Not authorized to cancel this appointment", apiErr.Message)
	})

	t.Run("lifecycle", func(t *testing.T) {
		_, err := a.UpdateAppointment(ctx, appt.ID, clinicsdk.UpdateAppointmentRequest{Status: strptr("completed")})
		requireAPIError(t, err, http.StatusConflict, clinicsdk.ErrorCodeInvalidTransition)

		got, err := a.UpdateAppointment(ctx, appt.ID, clinicsdk.UpdateAppointmentRequest{Status: strptr("confirmed")})
		require.NoError(t, err)
		require.Equal(t, "confirmed", got.Status)

		got, err = a.UpdateAppointment(ctx, appt.ID, clinicsdk.UpdateAppointmentRequest{Status: strptr("completed")})
		require.NoError(t, err)
		require.Equal(t, "completed", got.Status)

		_, err = a.CancelAppointment(ctx, appt.ID)
		requireAPIError(t, err, http.StatusConflict, clinicsdk.ErrorCodeInvalidTransition)

		_, err = a.UpdateAppointment(ctx, appt.ID, clinicsdk.UpdateAppointmentRequest{Notes: strptr("too late")})
		requireAPIError(t, err, http.StatusConflict, clinicsdk.ErrorCodeInvalidTransition)
	})
}

func TestCancelTwice(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()
	a, _ := srv.signedIn(t, "A", "a@example.com")

	appt, err := a.CreateAppointment(ctx, consultation("2025-06-01", "09:00 AM"))
	require.NoError(t, err)

	_, err = a.CancelAppointment(ctx, appt.ID)
	require.NoError(t, err)

	_, err = a.CancelAppointment(ctx, appt.ID)
	requireAPIError(t, err, http.StatusConflict, clinicsdk.ErrorCodeInvalidTransition)
}

func TestListMine(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()
	a, _ := srv.signedIn(t, "A", "a@example.com")
	b, _ := srv.signedIn(t, "B", "b@example.com")

	older, err := a.CreateAppointment(ctx, consultation("2025-05-01", "09:00 AM"))
	require.NoError(t, err)
	newer, err := a.CreateAppointment(ctx, consultation("2025-08-01", "09:00 AM"))
	require.NoError(t, err)
	_, err = b.CreateAppointment(ctx, consultation("2025-06-01", "09:00 AM"))
	require.NoError(t, err)

	mine, err := a.ListMyAppointments(ctx)
	require.NoError(t, err)
	require.True(t, mine.Success)
	require.Equal(t, 2, mine.Count)
	require.Equal(t, newer.ID, mine.Appointments[0].ID)
	require.Equal(t, older.ID, mine.Appointments[1].ID)

	empty, err := srv.client(t).ListMyAppointments(ctx)
	requireAPIError(t, err, http.StatusUnauthorized, clinicsdk.ErrorCodeUnauthenticated)
	require.Nil(t, empty)

	c, _ := srv.signedIn(t, "C", "c@example.com")
	none, err := c.ListMyAppointments(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, none.Count)
	require.NotNil(t, none.Appointments)
}

func TestAvailability(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()
	a, _ := srv.signedIn(t, "A", "a@example.com")
	b, _ := srv.signedIn(t, "B", "b@example.com")

	_, err := a.CreateAppointment(ctx, consultation("2025-06-01", "03:00 PM"))
	require.NoError(t, err)

	avail, err := b.Availability(ctx, "2025-06-01")
	require.NoError(t, err)
	require.Equal(t, "2025-06-01", avail.Date)
	require.Len(t, avail.Slots, 8)
	for _, s := range avail.Slots {
		require.Equal(t, s.Time != "03:00 PM", s.Available, s.Time)
	}

	_, err = b.Availability(ctx, "tomorrow")
	requireAPIError(t, err, http.StatusBadRequest, clinicsdk.ErrorCodeValidation)
}

func TestProductionHidesDebug(t *testing.T) {
	srv := newServer(t, func(o *clinichttp.Options) { o.Debug = false })
	ctx := context.Background()
	a, _ := srv.signedIn(t, "A", "a@example.com")

	_, err := a.CreateAppointment(ctx, consultation("2025-06-01", "13:00"))
	apiErr := requireAPIError(t, err, http.StatusBadRequest, clinicsdk.ErrorCodeValidation)
	require.Empty(t, apiErr.Debug)
}

func TestStoreOutageIsServerError(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()
	c, _ := srv.signedIn(t, "Pat", "pat@example.com")

	require.NoError(t, srv.store.Close())

	_, err := c.ListMyAppointments(ctx)
	requireAPIError(t, err, http.StatusInternalServerError, clinicsdk.ErrorCodeServerError)

	_, err = c.Me(ctx)
	requireAPIError(t, err, http.StatusInternalServerError, clinicsdk.ErrorCodeServerError)

	// A token that fails verification is still rejected before the store is touched.
	anon := srv.client(t)
	anon.BearerToken = "not-a-token"
	_, err = anon.ListMyAppointments(ctx)
	requireAPIError(t, err, http.StatusUnauthorized, clinicsdk.ErrorCodeUnauthenticated)
}
