package clinicsdk

import "time"

// ============================================================================
// Auth Types
// ============================================================================

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is the public projection of an account. The password hash never leaves
// the server.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// UserResponse is returned by signup, login and me.
type UserResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

// ============================================================================
// Appointment Types
// ============================================================================

// CreateAppointmentRequest is the body of POST /api/appointments.
type CreateAppointmentRequest struct {
	ServiceName string `json:"serviceName"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // slot label, e.g. "10:00 AM"
	Notes       string `json:"notes,omitempty"`
}

// UpdateAppointmentRequest is the body of PUT /api/appointments/{id}. Only
// the fields present are changed; any other field is rejected.
type UpdateAppointmentRequest struct {
	ServiceName *string `json:"serviceName,omitempty"`
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// Appointment is a booked slot together with its owner's contact details.
type Appointment struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	User        *User     `json:"user,omitempty"`
	ServiceName string    `json:"serviceName"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AppointmentResponse is returned by create, get and update.
type AppointmentResponse struct {
	Success     bool        `json:"success"`
	Appointment Appointment `json:"appointment"`
}

// AppointmentListResponse is returned by GET /api/appointments/my.
type AppointmentListResponse struct {
	Success      bool          `json:"success"`
	Count        int           `json:"count"`
	Appointments []Appointment `json:"appointments"`
}

// Slot is one clinic time slot on a given day.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// AvailabilityResponse is returned by GET /api/appointments/availability.
type AvailabilityResponse struct {
	Success bool   `json:"success"`
	Date    string `json:"date"`
	Slots   []Slot `json:"slots"`
}

// ============================================================================
// Shared Types
// ============================================================================

// MessageResponse is used by endpoints that only confirm an action, such as
// cancel and logout.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse represents the response structure for health check endpoints.
// Used by /api/health, /livez and /readyz (readyz includes the Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`

	// Signer indicates the token signing capability status
	Signer string `json:"signer"`
}
