package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/clinic/internal/clinic/service"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
	"github.com/aussiebroadwan/clinic/pkg/slogx"
)

const (
	msgSlotTaken    = "This time slot is already booked. Please choose another time."
	msgNotFound     = "Appointment not found"
	msgEmailTaken   = "User already exists with this email"
	msgInvalidCreds = "Invalid credentials"
	msgBadBody      = "Request body must be a single JSON object with known fields"
	msgServerError  = "Something went wrong. Please try again later."
)

// errorReply is what one service error turns into on the wire.
type errorReply struct {
	status int
	code   string
	msg    string
}

// replyFor maps the service taxonomy to HTTP. action fills in the 403
// message ("access", "update", "cancel").
func replyFor(err error, action string) errorReply {
	switch {
	case errors.Is(err, httpx.ErrBadJSON):
		return errorReply{http.StatusBadRequest, clinicsdk.ErrorCodeValidation, msgBadBody}
	case errors.Is(err, service.ErrValidation):
		return errorReply{http.StatusBadRequest, clinicsdk.ErrorCodeValidation, detail(err, service.ErrValidation)}
	case errors.Is(err, service.ErrSlotConflict):
		return errorReply{http.StatusBadRequest, clinicsdk.ErrorCodeSlotTaken, msgSlotTaken}
	case errors.Is(err, service.ErrDuplicateEmail):
		return errorReply{http.StatusBadRequest, clinicsdk.ErrorCodeEmailTaken, msgEmailTaken}
	case errors.Is(err, service.ErrInvalidCredentials):
		return errorReply{http.StatusUnauthorized, clinicsdk.ErrorCodeInvalidCredentials, msgInvalidCreds}
	case errors.Is(err, service.ErrUnauthenticated):
		return errorReply{http.StatusUnauthorized, clinicsdk.ErrorCodeUnauthenticated, "Not authorized, token failed"}
	case errors.Is(err, service.ErrForbidden):
		return errorReply{http.StatusForbidden, clinicsdk.ErrorCodeForbidden, "Not authorized to " + action + " this appointment"}
	case errors.Is(err, service.ErrNotFound):
		return errorReply{http.StatusNotFound, clinicsdk.ErrorCodeNotFound, msgNotFound}
	case errors.Is(err, service.ErrInvalidTransition):
		return errorReply{http.StatusConflict, clinicsdk.ErrorCodeInvalidTransition, capitalize(detail(err, service.ErrInvalidTransition))}
	}
	return errorReply{http.StatusInternalServerError, clinicsdk.ErrorCodeServerError, msgServerError}
}

// writeServiceError is the one place service errors become responses.
// Server errors are logged; with debug set the raw error is echoed back.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, action string, debug bool) {
	reply := replyFor(err, action)

	if reply.status >= http.StatusInternalServerError {
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
	}

	resp := httpx.ErrorResponse{Error: reply.code, Message: reply.msg}
	if debug {
		resp.Debug = err.Error()
	}
	httpx.WriteJSON(w, reply.status, resp)
}

// detail strips the sentinel prefix so the human message reads on its own.
func detail(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error())
	msg = strings.TrimPrefix(msg, ": ")
	if msg == "" {
		return sentinel.Error()
	}
	return msg
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
