package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/clinic/pkg/slogx"
)

// ErrAuthUnavailable marks an Authenticate failure that says nothing about
// the token itself, such as the session store being unreachable.
var ErrAuthUnavailable = errors.New("httpx: authentication unavailable")

// Authenticator turns a presented identity token into a principal. It must
// fail for tokens that are malformed, expired, or whose session is gone.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (Principal, error)
}

// AuthenticatorFunc adapts a function to Authenticator.
type AuthenticatorFunc func(ctx context.Context, token string) (Principal, error)

func (f AuthenticatorFunc) Authenticate(ctx context.Context, token string) (Principal, error) {
	return f(ctx, token)
}

// TokenFromRequest returns the identity token from the named cookie, falling
// back to an Authorization: Bearer header for non-browser clients.
func TokenFromRequest(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}

	authz := r.Header.Get("Authorization")
	if len(authz) > 7 && strings.EqualFold(authz[:7], "Bearer ") {
		return strings.TrimSpace(authz[7:])
	}
	return ""
}

// AuthnMiddleware rejects requests without a valid identity token and puts
// the resolved Principal on the request context.
func AuthnMiddleware(a Authenticator, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := TokenFromRequest(r, cookieName)
			if raw == "" {
				writeUnauthenticated(w, "Not authorized, no token")
				return
			}

			p, err := a.Authenticate(ctx, raw)
			if errors.Is(err, ErrAuthUnavailable) {
				log.Error("identity token could not be checked", "err", err)
				WriteError(w, http.StatusInternalServerError, "server_error", "Something went wrong. Please try again later.")
				return
			}
			if err != nil {
				log.Warn("identity token rejected", "err", err)
				writeUnauthenticated(w, "Not authorized, token failed")
				return
			}

			ctx = WithPrincipal(ctx, p)
			ctx = slogx.WithUserID(ctx, p.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthenticated(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	WriteError(w, http.StatusUnauthorized, "unauthenticated", msg)
}
