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

func TestSignupSetsCookie(t *testing.T) {
	srv := newServer(t)

	resp := rawRequest(t, http.MethodPost, srv.URL+"/api/auth/signup",
		`{"name":"Pat","email":"pat@example.com","password":"hunter22","phone":"0400 000 000"}`,
		map[string]string{"Content-Type": "application/json"},
	)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Success bool           `json:"success"`
		User    map[string]any `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.True(t, body.Success)
	require.Equal(t, "Pat", body.User["name"])
	require.Equal(t, "pat@example.com", body.User["email"])
	require.Equal(t, "0400 000 000", body.User["phone"])
	require.NotEmpty(t, body.User["id"])
	require.NotContains(t, body.User, "password")
	require.NotContains(t, body.User, "passwordHash")

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "token" {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "identity cookie not set")
	require.True(t, cookie.HttpOnly)
	require.False(t, cookie.Secure)
	require.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	require.Equal(t, "/", cookie.Path)
	require.Positive(t, cookie.MaxAge)
}

func TestSecureCookie(t *testing.T) {
	srv := newServer(t, func(o *clinichttp.Options) { o.Cookie.Secure = true })

	resp := rawRequest(t, http.MethodPost, srv.URL+"/api/auth/signup",
		`{"name":"Pat","email":"pat@example.com","password":"hunter22"}`, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	require.True(t, cookies[0].Secure)
	require.Equal(t, http.SameSiteNoneMode, cookies[0].SameSite)
}

func TestSignupErrors(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()
	srv.signedIn(t, "Pat", "pat@example.com")

	c := srv.client(t)

	_, err := c.Signup(ctx, clinicsdk.SignupRequest{Name: "Again", Email: "pat@example.com", Password: "hunter22"})
	apiErr := requireAPIError(t, err, http.StatusBadRequest, clinicsdk.ErrorCodeEmailTaken)
	require.Equal(t, "User already exists with this email", apiErr.Message)

	_, err = c.Signup(ctx, clinicsdk.SignupRequest{Name: "Short", Email: "short@example.com", Password: "abc"})
	requireAPIError(t, err, http.StatusBadRequest, clinicsdk.ErrorCodeValidation)

	_, err = c.Signup(ctx, clinicsdk.SignupRequest{Name: "Bad", Email: "not-an-email", Password: "hunter22"})
	requireAPIError(t, err, http.StatusBadRequest, clinicsdk.ErrorCodeValidation)

	resp := rawRequest(t, http.MethodPost, srv.URL+"/api/auth/signup", `{"name":`, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// no cookie came back from any failure
	require.Empty(t, c.Cookie("token"))
}

func TestLogin(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()
	_, signedUp := srv.signedIn(t, "Pat", "pat@example.com")

	c := srv.client(t)

	_, err := c.Login(ctx, "pat@example.com", "wrong-password")
	apiErr := requireAPIError(t, err, http.StatusUnauthorized, clinicsdk.ErrorCodeInvalidCredentials)
	require.Equal(t, "Invalid credentials", apiErr.Message)

	_, err = c.Login(ctx, "nobody@example.com", "hunter22")
	requireAPIError(t, err, http.StatusUnauthorized, clinicsdk.ErrorCodeInvalidCredentials)

	u, err := c.Login(ctx, "pat@example.com", "hunter22")
	require.NoError(t, err)
	require.Equal(t, signedUp.ID, u.ID)
	require.NotEmpty(t, c.Cookie("token"))

	me, err := c.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, signedUp.ID, me.ID)
}

func TestMe(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()

	t.Run("no token", func(t *testing.T) {
		_, err := srv.client(t).Me(ctx)
		apiErr := requireAPIError(t, err, http.StatusUnauthorized, clinicsdk.ErrorCodeUnauthenticated)
		require.Equal(t, "Not authorized, no token", apiErr.Message)
	})

	t.Run("garbage token", func(t *testing.T) {
		c := srv.client(t)
		c.BearerToken = "not.a.jwt"
		_, err := c.Me(ctx)
		apiErr := requireAPIError(t, err, http.StatusUnauthorized, clinicsdk.ErrorCodeUnauthenticated)
		require.Equal(t, "Not authorized, token failed", apiErr.Message)
	})

	t.Run("bearer fallback", func(t *testing.T) {
		signedIn, u := srv.signedIn(t, "Pat", "pat@example.com")

		c := srv.client(t)
		c.BearerToken = signedIn.Cookie("token")
		me, err := c.Me(ctx)
		require.NoError(t, err)
		require.Equal(t, u.ID, me.ID)
		require.Equal(t, "Pat", me.Name)
	})
}

func TestLogout(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()
	c, _ := srv.signedIn(t, "Pat", "pat@example.com")
	token := c.Cookie("token")
	require.NotEmpty(t, token)

	require.NoError(t, c.Logout(ctx))
	require.Empty(t, c.Cookie("token"))

	_, err := c.Me(ctx)
	requireAPIError(t, err, http.StatusUnauthorized, clinicsdk.ErrorCodeUnauthenticated)

	// the old token is dead server-side, not only dropped by the browser
	replay := srv.client(t)
	replay.BearerToken = token
	_, err = replay.Me(ctx)
	requireAPIError(t, err, http.StatusUnauthorized, clinicsdk.ErrorCodeUnauthenticated)

	// logging out again, or without any token, still succeeds
	require.NoError(t, c.Logout(ctx))
	require.NoError(t, srv.client(t).Logout(ctx))
}
