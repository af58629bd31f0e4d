// Package application holds the services sitting between the driving
// adapters and the directory API ports.
package application

import (
	"context"
	"log/slog"
	"sync"

	"github.com/rafaeltov/acessopainel/internal/domain/model"
	"github.com/rafaeltov/acessopainel/internal/domain/port/driven"
)

// SessionService is the single source of truth for "who is logged in".
// It is a process-wide, mutex-guarded state cell mutated only by
// CheckSession, Login and Logout; everything else reads it through the
// accessors. The remote session itself lives in a cookie managed by the
// API client's jar.
type SessionService struct {
	auth driven.AuthAPI

	mu      sync.RWMutex
	admin   *model.Admin
	loading bool
}

// NewSessionService creates a SessionService in the loading state. The
// composition root is expected to run CheckSession once at startup.
func NewSessionService(auth driven.AuthAPI) *SessionService {
	return &SessionService{auth: auth, loading: true}
}

// CheckSession resolves the admin bound to an existing session cookie, if
// any. A failure of any kind leaves the admin unset and is only logged:
// "could not check" means "not logged in", never a fatal error. The
// loading flag always clears, even on failure, so the route guard never
// blocks forever.
func (s *SessionService) CheckSession(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	env := s.auth.CheckSession(ctx)
	if !env.Ok() {
		slog.Info("no active session", "error", env.ErrorMessage())
		return
	}

	s.mu.Lock()
	s.admin = env.Data
	s.mu.Unlock()
	slog.Info("session restored", "username", env.Data.Username)
}

// Login authenticates against the API. Returns true and stores the admin
// on success; false otherwise. Never returns an error: every failure mode
// is already envelope-shaped.
func (s *SessionService) Login(ctx context.Context, username, password string) bool {
	env := s.auth.Login(ctx, username, password)
	if !env.Ok() {
		slog.Info("login rejected", "username", username, "error", env.ErrorMessage())
		return false
	}

	s.mu.Lock()
	s.admin = env.Data
	s.mu.Unlock()
	slog.Info("login successful", "username", env.Data.Username)
	return true
}

// Logout tears down the remote session best-effort and clears the local
// admin regardless of the remote result.
func (s *SessionService) Logout(ctx context.Context) {
	if env := s.auth.Logout(ctx); !env.Success {
		slog.Warn("remote logout failed", "error", env.ErrorMessage())
	}

	s.mu.Lock()
	s.admin = nil
	s.mu.Unlock()
	slog.Info("logged out")
}

// Admin returns a copy of the current admin, or nil when unauthenticated.
func (s *SessionService) Admin() *model.Admin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.admin == nil {
		return nil
	}
	admin := *s.admin
	return &admin
}

// IsAuthenticated reports whether an admin is set.
func (s *SessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admin != nil
}

// IsLoading reports whether the initial session check is still in flight.
func (s *SessionService) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
