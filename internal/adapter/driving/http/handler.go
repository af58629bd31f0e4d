// Package httphandler serves the small machine-readable surface of the
// console: health, session state, and the dashboard counts. The HTML GUI
// lives in the web package; this one exists for probes and scripting.
package httphandler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rafaeltov/acessopainel/internal/application"
)

// Handler is the HTTP driving adapter that serves the JSON API.
type Handler struct {
	sessions *application.SessionService
	stats    *application.StatsService
	logger   *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(sessions *application.SessionService, stats *application.StatsService, logger *slog.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		stats:    stats,
		logger:   logger,
	}
}

// RegisterRoutes registers the JSON API routes on the provided mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/health", h.Health)
	mux.HandleFunc("GET /api/v1/session", h.Session)
	mux.HandleFunc("GET /api/v1/stats", h.Stats)
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// Session reports the current session state with the directory API.
func (h *Handler) Session(w http.ResponseWriter, _ *http.Request) {
	resp := SessionResponse{
		Loading:       h.sessions.IsLoading(),
		Authenticated: h.sessions.IsAuthenticated(),
	}
	if admin := h.sessions.Admin(); admin != nil {
		resp.Admin = &AdminResponse{
			ID:       admin.ID,
			Username: admin.Username,
			Nome:     admin.Nome,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Stats returns the dashboard counts. Unauthenticated callers get a 401;
// the counts come straight from the directory API, not a local cache.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	if !h.sessions.IsAuthenticated() {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	ov := h.stats.Overview(r.Context())
	writeJSON(w, http.StatusOK, StatsResponse{
		Lojas:        ov.Lojas,
		Sistemas:     ov.Sistemas,
		Funcionarios: ov.Funcionarios,
		Acessos:      ov.Acessos,
		Disponivel:   ov.Disponivel,
	})
}
