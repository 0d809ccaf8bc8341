package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/pkg/cryptox"
	"github.com/aussiebroadwan/clinic/pkg/idx"
	"github.com/aussiebroadwan/clinic/pkg/jwtx"
	"github.com/aussiebroadwan/clinic/pkg/slogx"
)

// MinPasswordLength is the shortest password signup accepts.
const MinPasswordLength = 6

// AuthService owns sign-up, sign-in and turning an identity token back into
// a caller.
type AuthService struct {
	Store      store.Store
	KeyManager *jwtx.KeyManager
	Issuer     string
	SessionTTL time.Duration
	Clock      Clock
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// Issued is a signed-in user together with the identity token to hand back.
type Issued struct {
	User      domain.User
	Token     string
	SessionID string
	ExpiresAt time.Time
}

// Caller is the user behind a verified identity token.
type Caller struct {
	User      domain.User
	SessionID string
}

// Signup registers a new user and signs them in.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (Issued, error) {
	l := slogx.FromContext(ctx)

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	if err := validateSignup(in); err != nil {
		return Issued{}, err
	}

	if _, err := s.Store.Users().GetUserByEmail(ctx, in.Email); err == nil {
		return Issued{}, ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrNotFound) {
		return Issued{}, storeErr("lookup user", err)
	}

	// Hash before the transaction, argon2 is slow and sqlite has one writer.
	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return Issued{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.Clock.now()
	user := domain.User{
		ID:           idx.NewAt(now).String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Phone:        in.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var out Issued
	err = withTx(ctx, s.Store, "signup", func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrDuplicateEmail
			}
			return storeErr("create user", err)
		}

		var err error
		out, err = s.issue(ctx, tx, user, now)
		return err
	})
	if err != nil {
		return Issued{}, err
	}

	l.Info("user signed up", slog.String("user_id", user.ID))
	return out, nil
}

// Login checks an email and password pair and starts a new session.
func (s *AuthService) Login(ctx context.Context, email, password string) (Issued, error) {
	l := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Issued{}, invalidf("email and password are required")
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			cryptox.VerifyDummy(password)
			return Issued{}, ErrInvalidCredentials
		}
		return Issued{}, storeErr("lookup user", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Error("stored password hash unreadable", slog.String("user_id", user.ID), slog.Any("error", err))
		}
		return Issued{}, ErrInvalidCredentials
	}

	out, err := s.issue(ctx, s.Store, user, s.Clock.now())
	if err != nil {
		return Issued{}, err
	}

	l.Info("user logged in", slog.String("user_id", user.ID))
	return out, nil
}

// ResolveCaller verifies an identity token and loads the user it names.
// Every failure is ErrUnauthenticated except a store outage.
func (s *AuthService) ResolveCaller(ctx context.Context, token string) (Caller, error) {
	if token == "" {
		return Caller{}, ErrUnauthenticated
	}

	claims, err := s.KeyManager.Verify(token)
	if err != nil {
		return Caller{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if claims.Subject == "" || claims.SID == "" {
		return Caller{}, fmt.Errorf("%w: token missing sub or sid", ErrUnauthenticated)
	}

	sess, err := s.Store.Sessions().GetSessionByID(ctx, claims.SID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Caller{}, fmt.Errorf("%w: unknown session", ErrUnauthenticated)
		}
		return Caller{}, storeErr("load session", err)
	}
	if sess.UserID != claims.Subject {
		return Caller{}, fmt.Errorf("%w: session belongs to another user", ErrUnauthenticated)
	}
	if !sess.Active(s.Clock.now()) {
		return Caller{}, fmt.Errorf("%w: session ended", ErrUnauthenticated)
	}

	user, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Caller{}, fmt.Errorf("%w: user gone", ErrUnauthenticated)
		}
		return Caller{}, storeErr("load user", err)
	}

	return Caller{User: user, SessionID: sess.ID}, nil
}

// Logout revokes a session. Unknown sessions are ignored.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := s.Store.Sessions().RevokeSession(ctx, sessionID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return storeErr("revoke session", err)
	}

	slogx.FromContext(ctx).Info("session revoked", slog.String("session_id", sessionID))
	return nil
}

// Me returns the current record for a signed-in user.
func (s *AuthService) Me(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUnauthenticated
		}
		return domain.User{}, storeErr("load user", err)
	}
	return user, nil
}

func (s *AuthService) ttl() time.Duration {
	if s.SessionTTL <= 0 {
		return jwtx.DefaultSessionTTL
	}
	return s.SessionTTL
}

// issue records a session through st and signs a token naming it.
func (s *AuthService) issue(ctx context.Context, st store.Store, user domain.User, now time.Time) (Issued, error) {
	ttl := s.ttl()
	sess := domain.Session{
		ID:        idx.NewAt(now).String(),
		UserID:    user.ID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
	if err := st.Sessions().CreateSession(ctx, sess); err != nil {
		return Issued{}, storeErr("create session", err)
	}

	claims := jwtx.NewSessionClaims(user.ID, sess.ID, ttl, s.Issuer, user.Name, user.Email, now)
	token, err := s.KeyManager.Sign(claims)
	if err != nil {
		return Issued{}, fmt.Errorf("sign identity token: %w", err)
	}

	return Issued{
		User:      user,
		Token:     token,
		SessionID: sess.ID,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

func validateSignup(in SignupInput) error {
	switch {
	case in.Name == "":
		return invalidf("name is required")
	case in.Email == "":
		return invalidf("email is required")
	case !validEmail(in.Email):
		return invalidf("email is not a valid address")
	case len(in.Password) < MinPasswordLength:
		return invalidf("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
