package http

import (
	"net/http"

	"github.com/aussiebroadwan/clinic/internal/clinic/service"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
	"github.com/aussiebroadwan/clinic/pkg/slogx"
)

type AuthHandler struct {
	AuthService *service.AuthService
	Cookie      CookieConfig
	Debug       bool
}

// HandleSignup creates an account and signs it in.
//
//	@Summary		Sign up
//	@Description	Creates an account and sets the identity cookie. Passwords need at least 6 characters.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clinicsdk.SignupRequest		true	"Account details"
//	@Success		201		{object}	clinicsdk.UserResponse		"Account created"
//	@Failure		400		{object}	httpx.ErrorResponse			"Invalid input or email already registered"
//	@Failure		429		{object}	httpx.ErrorResponse			"Too many requests"
//	@Failure		500		{object}	httpx.ErrorResponse			"Internal server error"
//	@Router			/api/auth/signup [post].
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.SignupRequest
	if err := httpx.DecodeJSON(r, &req, false); err != nil {
		writeServiceError(w, r, err, "", h.Debug)
		return
	}

	issued, err := h.AuthService.Signup(r.Context(), service.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		writeServiceError(w, r, err, "", h.Debug)
		return
	}

	h.Cookie.set(w, issued.Token, issued.ExpiresAt)
	httpx.WriteJSON(w, http.StatusCreated, clinicsdk.UserResponse{Success: true, User: toUser(issued.User)})
}

// HandleLogin signs in with email and password.
//
//	@Summary		Log in
//	@Description	Checks the credentials and sets the identity cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clinicsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	clinicsdk.UserResponse	"Signed in"
//	@Failure		400		{object}	httpx.ErrorResponse		"Malformed body"
//	@Failure		401		{object}	httpx.ErrorResponse		"Invalid credentials"
//	@Failure		429		{object}	httpx.ErrorResponse		"Too many requests"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req clinicsdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req, false); err != nil {
		writeServiceError(w, r, err, "", h.Debug)
		return
	}

	issued, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "", h.Debug)
		return
	}

	h.Cookie.set(w, issued.Token, issued.ExpiresAt)
	httpx.WriteJSON(w, http.StatusOK, clinicsdk.UserResponse{Success: true, User: toUser(issued.User)})
}

// HandleLogout revokes the presented session, if any, and clears the cookie.
//
//	@Summary		Log out
//	@Description	Revokes the current session and clears the identity cookie. Always succeeds.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	clinicsdk.MessageResponse	"Logged out"
//	@Router			/api/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if raw := httpx.TokenFromRequest(r, h.Cookie.Name); raw != "" {
		caller, err := h.AuthService.ResolveCaller(ctx, raw)
		if err == nil {
			if err := h.AuthService.Logout(ctx, caller.SessionID); err != nil {
				slogx.FromContext(ctx).Warn("failed to revoke session", "error", err)
			}
		}
	}

	h.Cookie.clear(w)
	httpx.WriteJSON(w, http.StatusOK, clinicsdk.MessageResponse{Success: true, Message: "Logged out successfully"})
}

// HandleMe returns the signed-in user.
//
//	@Summary		Current user
//	@Tags			Auth
//	@Security		CookieAuth
//	@Produce		json
//	@Success		200	{object}	clinicsdk.UserResponse	"Signed-in user"
//	@Failure		401	{object}	httpx.ErrorResponse		"Missing or invalid token"
//	@Router			/api/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, service.ErrUnauthenticated, "", h.Debug)
		return
	}

	u, err := h.AuthService.Me(r.Context(), p.UserID)
	if err != nil {
		writeServiceError(w, r, err, "", h.Debug)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clinicsdk.UserResponse{Success: true, User: toUser(u)})
}
