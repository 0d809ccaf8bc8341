package clinicsdk

import (
	"context"
	"net/http"
)

// Signup registers a new account and signs this client in.
func (c *SDKClient) Signup(ctx context.Context, req SignupRequest) (*User, error) {
	return c.userCall(ctx, http.MethodPost, "/api/auth/signup", req, http.StatusCreated)
}

// Login signs this client in.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*User, error) {
	return c.userCall(ctx, http.MethodPost, "/api/auth/login", LoginRequest{Email: email, Password: password}, http.StatusOK)
}

// Me returns the signed-in user.
func (c *SDKClient) Me(ctx context.Context) (*User, error) {
	return c.userCall(ctx, http.MethodGet, "/api/auth/me", nil, http.StatusOK)
}

// Logout revokes the current session and drops the identity cookie.
func (c *SDKClient) Logout(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/logout", nil)
	if err != nil {
		return err
	}

	var out MessageResponse
	return decodeJSON(resp, &out, http.StatusOK)
}

func (c *SDKClient) userCall(ctx context.Context, method, path string, body any, expected int) (*User, error) {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	var out UserResponse
	if err := decodeJSON(resp, &out, expected); err != nil {
		return nil, err
	}

	return &out.User, nil
}
