package web

import (
	"net/http"
	"strings"
)

const erroCSRF = "Sessão expirada, tente novamente"

// LoginPage renders the login form. Admins with a live session skip
// straight to the dashboard.
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if h.sessions.IsAuthenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	token := ensureCSRF(w, r)
	h.render(w, http.StatusOK, loginPage(r.URL.Query().Get("erro"), token))
}

// LoginSubmit authenticates against the directory API and establishes the
// remote session. Failures loop back to the form with a message; the
// handler never distinguishes bad credentials from API trouble beyond the
// envelope's own text.
func (h *Handler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		redirectList(w, r, "/login", nil, erroCSRF, "")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	if username == "" || password == "" {
		redirectList(w, r, "/login", nil, "Informe usuário e senha", "")
		return
	}

	if !h.sessions.Login(r.Context(), username, password) {
		redirectList(w, r, "/login", nil, "Usuário ou senha inválidos", "")
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout clears the session and returns to the login page.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		redirectList(w, r, "/login", nil, erroCSRF, "")
		return
	}

	h.sessions.Logout(r.Context())
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Dashboard renders the overview cards with live directory counts.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	token := ensureCSRF(w, r)
	overview := h.stats.Overview(r.Context())

	var erro string
	if !overview.Disponivel {
		erro = "Não foi possível carregar todos os contadores"
	}

	h.render(w, http.StatusOK, dashboardPage(h.sessions.Admin(), overview, erro, token))
}
