package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID    ctxKey = "user_id"
	CtxKeySessionID ctxKey = "session_id"
)

// Principal is the authenticated caller attached to a request.
type Principal struct {
	UserID    string
	SessionID string
}

// WithPrincipal stores p on ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, p.UserID)
	ctx = context.WithValue(ctx, CtxKeySessionID, p.SessionID)
	return ctx
}

// PrincipalFromContext returns the caller placed by AuthnMiddleware.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	uid, _ := ctx.Value(CtxKeyUserID).(string)
	if uid == "" {
		return Principal{}, false
	}
	sid, _ := ctx.Value(CtxKeySessionID).(string)
	return Principal{UserID: uid, SessionID: sid}, true
}
