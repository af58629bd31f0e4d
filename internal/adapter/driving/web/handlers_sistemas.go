package web

import (
	"net/http"
	"net/url"

	"github.com/rafaeltov/acessopainel/internal/domain/model"
)

// sistemasQuery keeps the listing's own switches across redirects.
func sistemasQuery(incluirInativos bool) url.Values {
	q := url.Values{}
	if incluirInativos {
		q.Set("incluir_inativos", "1")
	}
	return q
}

// Sistemas renders the sistema listing. `?incluir_inativos=1` widens the
// list; `?editar=ID` pre-fills the form.
func (h *Handler) Sistemas(w http.ResponseWriter, r *http.Request) {
	token := ensureCSRF(w, r)
	q := r.URL.Query()

	data := sistemasPageData{
		Admin:           h.sessions.Admin(),
		IncluirInativos: q.Get("incluir_inativos") == "1",
		Erro:            q.Get("erro"),
		Msg:             q.Get("msg"),
		CSRF:            token,
	}

	env := h.sistemas.ListSistemas(r.Context(), data.IncluirInativos)
	if env.Ok() {
		data.Sistemas = *env.Data
	} else if data.Erro == "" {
		data.Erro = env.ErrorMessage()
	}

	if id, err := parseQueryID(q.Get("editar")); err == nil {
		for i := range data.Sistemas {
			if data.Sistemas[i].ID == id {
				data.Editando = &data.Sistemas[i]
				break
			}
		}
	}

	h.render(w, http.StatusOK, sistemasPage(data))
}

// CreateSistema handles the create form submit.
func (h *Handler) CreateSistema(w http.ResponseWriter, r *http.Request) {
	back := sistemasQuery(r.FormValue("incluir_inativos") == "1")
	if !validateCSRF(r) {
		redirectList(w, r, "/sistemas", back, erroCSRF, "")
		return
	}

	in, err := parseSistemaForm(r)
	if err != nil {
		redirectList(w, r, "/sistemas", back, err.Error(), "")
		return
	}

	if env := h.sistemas.CreateSistema(r.Context(), in); !env.Success {
		redirectList(w, r, "/sistemas", back, env.ErrorMessage(), "")
		return
	}
	redirectList(w, r, "/sistemas", back, "", "Sistema criado!")
}

// UpdateSistema handles the edit form submit for /sistemas/{id}.
func (h *Handler) UpdateSistema(w http.ResponseWriter, r *http.Request) {
	back := sistemasQuery(r.FormValue("incluir_inativos") == "1")
	if !validateCSRF(r) {
		redirectList(w, r, "/sistemas", back, erroCSRF, "")
		return
	}

	id, err := parseID(r)
	if err != nil {
		redirectList(w, r, "/sistemas", back, "Sistema inválido", "")
		return
	}

	in, err := parseSistemaForm(r)
	if err != nil {
		redirectList(w, r, "/sistemas", back, err.Error(), "")
		return
	}

	patch := model.SistemaPatch{Nome: &in.Nome, Descricao: &in.Descricao, URL: &in.URL}
	if env := h.sistemas.UpdateSistema(r.Context(), id, patch); !env.Success {
		redirectList(w, r, "/sistemas", back, env.ErrorMessage(), "")
		return
	}
	redirectList(w, r, "/sistemas", back, "", "Sistema atualizado!")
}

// ToggleSistema flips a sistema's ativo flag.
func (h *Handler) ToggleSistema(w http.ResponseWriter, r *http.Request) {
	back := sistemasQuery(r.FormValue("incluir_inativos") == "1")
	if !validateCSRF(r) {
		redirectList(w, r, "/sistemas", back, erroCSRF, "")
		return
	}

	id, err := parseID(r)
	if err != nil {
		redirectList(w, r, "/sistemas", back, "Sistema inválido", "")
		return
	}

	ativo := r.FormValue("ativo") == "1"
	if env := h.sistemas.ToggleSistema(r.Context(), id, ativo); !env.Success {
		redirectList(w, r, "/sistemas", back, env.ErrorMessage(), "")
		return
	}
	redirectList(w, r, "/sistemas", back, "", "")
}

// DeleteSistema removes a sistema.
func (h *Handler) DeleteSistema(w http.ResponseWriter, r *http.Request) {
	back := sistemasQuery(r.FormValue("incluir_inativos") == "1")
	if !validateCSRF(r) {
		redirectList(w, r, "/sistemas", back, erroCSRF, "")
		return
	}

	id, err := parseID(r)
	if err != nil {
		redirectList(w, r, "/sistemas", back, "Sistema inválido", "")
		return
	}

	if env := h.sistemas.DeleteSistema(r.Context(), id); !env.Success {
		redirectList(w, r, "/sistemas", back, env.ErrorMessage(), "")
		return
	}
	redirectList(w, r, "/sistemas", back, "", "Sistema excluído!")
}
