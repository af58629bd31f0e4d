package api

import (
	"context"

	"github.com/rafaeltov/acessopainel/internal/domain/model"
)

// loginRequest is the body of POST /auth/login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates against the API. On success the session cookie ends
// up in the client's jar and rides along on every subsequent call.
func (c *Client) Login(ctx context.Context, username, password string) model.Envelope[model.Admin] {
	return post[model.Admin](ctx, c, "/auth/login", loginRequest{Username: username, Password: password})
}

// Logout tears down the remote session. The API expects an empty JSON
// object body.
func (c *Client) Logout(ctx context.Context) model.Envelope[model.Empty] {
	return post[model.Empty](ctx, c, "/auth/logout", struct{}{})
}

// CheckSession resolves the admin bound to the current session cookie.
func (c *Client) CheckSession(ctx context.Context) model.Envelope[model.Admin] {
	return get[model.Admin](ctx, c, "/auth/check-session", nil)
}
