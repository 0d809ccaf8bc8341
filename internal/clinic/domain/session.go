package domain

import "time"

// Session is the stored record behind an identity token. The token carries
// the session ID as its "sid" claim so signing out can revoke it early.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	RevokedAt *time.Time // nullable
	CreatedAt time.Time
}

// Active reports whether the session can still authenticate requests at now.
func (s Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
