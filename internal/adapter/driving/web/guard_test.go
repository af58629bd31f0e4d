package web

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rafaeltov/acessopainel/internal/application"
	"github.com/rafaeltov/acessopainel/internal/domain/model"
)

// stubAuthAPI drives the session service into a chosen state.
type stubAuthAPI struct {
	checkEnv model.Envelope[model.Admin]
}

func (s *stubAuthAPI) Login(_ context.Context, _, _ string) model.Envelope[model.Admin] {
	return s.checkEnv
}
func (s *stubAuthAPI) Logout(_ context.Context) model.Envelope[model.Empty] {
	return model.Envelope[model.Empty]{Success: true}
}
func (s *stubAuthAPI) CheckSession(_ context.Context) model.Envelope[model.Admin] {
	return s.checkEnv
}

// newGuardHandler builds a Handler whose session service is in one of
// the three guard states: loading, unauthenticated, authenticated.
func newGuardHandler(t *testing.T, state string) *Handler {
	t.Helper()
	auth := &stubAuthAPI{checkEnv: model.Fail[model.Admin]("sem sessão")}
	if state == "authenticated" {
		auth.checkEnv = model.Envelope[model.Admin]{
			Success: true,
			Data:    &model.Admin{ID: 1, Username: "admin", Nome: "Administrador"},
		}
	}
	sessions := application.NewSessionService(auth)
	if state != "loading" {
		sessions.CheckSession(context.Background())
	}
	return NewHandler(sessions, nil, nil, nil, nil, nil, slog.Default())
}

func TestProtected_Loading(t *testing.T) {
	h := newGuardHandler(t, "loading")
	called := false
	guarded := h.protected(func(_ http.ResponseWriter, _ *http.Request) { called = true })

	rec := httptest.NewRecorder()
	guarded(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.False(t, called, "no protected content while loading")
	assert.Contains(t, rec.Body.String(), "Verificando sessão")
}

func TestProtected_Unauthenticated(t *testing.T) {
	h := newGuardHandler(t, "unauthenticated")
	called := false
	guarded := h.protected(func(_ http.ResponseWriter, _ *http.Request) { called = true })

	rec := httptest.NewRecorder()
	guarded(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.False(t, called, "no protected content, not even transiently")
}

func TestProtected_Authenticated(t *testing.T) {
	h := newGuardHandler(t, "authenticated")
	called := false
	guarded := h.protected(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	guarded(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestIndex_RedirectsByAuthState(t *testing.T) {
	tests := []struct {
		state string
		want  string
	}{
		{"authenticated", "/dashboard"},
		{"unauthenticated", "/login"},
		{"loading", "/login"},
	}
	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			h := newGuardHandler(t, tt.state)
			rec := httptest.NewRecorder()
			h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.want, rec.Header().Get("Location"))
		})
	}
}

func TestLoginSubmit_RejectsMissingCSRF(t *testing.T) {
	h := newGuardHandler(t, "unauthenticated")

	rec := httptest.NewRecorder()
	h.LoginSubmit(rec, httptest.NewRequest(http.MethodPost, "/login", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "/login?erro=")
}
