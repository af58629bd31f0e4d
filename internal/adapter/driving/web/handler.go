// Package web implements the HTML GUI driving adapter using gomponents
// pages rendered server-side. Mutations are plain form POSTs following
// the post-redirect-get pattern; failure messages travel back in the
// `erro` query parameter.
package web

import (
	"log/slog"
	"net/http"

	. "maragu.dev/gomponents"

	"github.com/rafaeltov/acessopainel/internal/application"
	"github.com/rafaeltov/acessopainel/internal/domain/port/driven"
)

// Handler is the web GUI driving adapter.
type Handler struct {
	sessions     *application.SessionService
	stats        *application.StatsService
	lojas        driven.LojaAPI
	sistemas     driven.SistemaAPI
	funcionarios driven.FuncionarioAPI
	acessos      driven.AcessoAPI
	logger       *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	sessions *application.SessionService,
	stats *application.StatsService,
	lojas driven.LojaAPI,
	sistemas driven.SistemaAPI,
	funcionarios driven.FuncionarioAPI,
	acessos driven.AcessoAPI,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		sessions:     sessions,
		stats:        stats,
		lojas:        lojas,
		sistemas:     sistemas,
		funcionarios: funcionarios,
		acessos:      acessos,
		logger:       logger,
	}
}

// render writes a page with the given status. Render errors mid-body are
// logged only; headers are already gone by then.
func (h *Handler) render(w http.ResponseWriter, status int, page Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Render(w); err != nil {
		h.logger.Error("page render failed", "error", err)
	}
}

// Index routes the bare path: authenticated admins land on the dashboard,
// everyone else on the login page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	if h.sessions.IsAuthenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
