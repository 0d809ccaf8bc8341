/*
Package clinicsdk provides the wire types and a client for the clinic booking API.

# Overview

The server encodes its responses with the types in this package, so a client built on the
SDK always decodes exactly what the handlers wrote.

An SDKClient behaves like a single browser: it carries a cookie jar, and the identity cookie
set by signup or login is replayed on every later request.

	client, err := clinicsdk.NewSDKClient("http://localhost:8080")
	if err != nil {
		return err
	}

	user, err := client.Signup(ctx, clinicsdk.SignupRequest{
		Name:     "Pat",
		Email:    "pat@example.com",
		Password: "hunter22",
	})

	appt, err := client.CreateAppointment(ctx, clinicsdk.CreateAppointmentRequest{
		ServiceName: "Consultation",
		Date:        "2025-06-01",
		Time:        "10:00 AM",
	})

Non-browser callers that already hold a token can set BearerToken instead of relying on
the cookie.

# Error Handling

Every non-2xx response becomes an *APIError carrying the status code and the machine
readable code from the body:

	_, err := client.CreateAppointment(ctx, req)
	var apiErr *clinicsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == clinicsdk.ErrorCodeSlotTaken {
		// pick another slot
	}

# Thread Safety

An SDKClient may be shared between goroutines. They all act as the same signed-in user.
*/
package clinicsdk
