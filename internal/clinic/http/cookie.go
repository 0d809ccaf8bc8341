package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/service"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
)

// DefaultCookieName is the cookie the browser front end expects.
const DefaultCookieName = "token"

// CookieConfig controls the identity cookie. Secure cookies are sent with
// SameSite=None so a front end on another origin can use them; plain HTTP
// development falls back to Lax, which browsers accept without Secure.
type CookieConfig struct {
	Name   string
	Secure bool
}

func (c CookieConfig) sameSite() http.SameSite {
	if c.Secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

// set writes the identity cookie. It expires together with the session.
func (c CookieConfig) set(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   max(int(time.Until(expiresAt).Seconds()), 1),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: c.sameSite(),
	})
}

func (c CookieConfig) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: c.sameSite(),
	})
}

// callerAuthenticator adapts AuthService.ResolveCaller to the httpx middleware.
type callerAuthenticator struct {
	auth *service.AuthService
}

func (a callerAuthenticator) Authenticate(ctx context.Context, token string) (httpx.Principal, error) {
	caller, err := a.auth.ResolveCaller(ctx, token)
	if errors.Is(err, service.ErrStore) {
		return httpx.Principal{}, fmt.Errorf("%w: %w", httpx.ErrAuthUnavailable, err)
	}
	if err != nil {
		return httpx.Principal{}, err
	}
	return httpx.Principal{UserID: caller.User.ID, SessionID: caller.SessionID}, nil
}
