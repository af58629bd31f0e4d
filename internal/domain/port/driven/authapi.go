// Package driven defines the ports to the external directory API. One
// interface per remote resource; every call returns the API's uniform
// envelope instead of a Go error, so callers branch on Success and no
// transport failure ever propagates as a panic or error value.
package driven

import (
	"context"

	"github.com/rafaeltov/acessopainel/internal/domain/model"
)

// AuthAPI is the driven port for the session endpoints. The server-side
// session is cookie-based: a successful login plants the cookie in the
// adapter's jar as a side effect, and the console never manages it
// directly.
type AuthAPI interface {
	// Login authenticates the admin. Success with Data set means the
	// session was established.
	Login(ctx context.Context, username, password string) model.Envelope[model.Admin]

	// Logout tears down the remote session. Best effort: callers clear
	// local state regardless of the result.
	Logout(ctx context.Context) model.Envelope[model.Empty]

	// CheckSession resolves the admin bound to the current session cookie,
	// if any. A failure envelope means "not logged in", not a fatal error.
	CheckSession(ctx context.Context) model.Envelope[model.Admin]
}
