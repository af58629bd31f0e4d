package web

import (
	"net/http"

	"github.com/rafaeltov/acessopainel/internal/domain/model"
)

// Lojas renders the loja listing with the create/edit form. `?editar=ID`
// pre-fills the form with that loja's current values.
func (h *Handler) Lojas(w http.ResponseWriter, r *http.Request) {
	token := ensureCSRF(w, r)
	q := r.URL.Query()

	data := lojasPageData{
		Admin: h.sessions.Admin(),
		Erro:  q.Get("erro"),
		Msg:   q.Get("msg"),
		CSRF:  token,
	}

	env := h.lojas.ListLojas(r.Context())
	if env.Ok() {
		data.Lojas = *env.Data
	} else if data.Erro == "" {
		data.Erro = env.ErrorMessage()
	}

	if id, err := parseQueryID(q.Get("editar")); err == nil {
		for i := range data.Lojas {
			if data.Lojas[i].ID == id {
				data.Editando = &data.Lojas[i]
				break
			}
		}
	}

	h.render(w, http.StatusOK, lojasPage(data))
}

// CreateLoja handles the create form submit.
func (h *Handler) CreateLoja(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		redirectList(w, r, "/lojas", nil, erroCSRF, "")
		return
	}

	in, err := parseLojaForm(r)
	if err != nil {
		redirectList(w, r, "/lojas", nil, err.Error(), "")
		return
	}

	if env := h.lojas.CreateLoja(r.Context(), in); !env.Success {
		redirectList(w, r, "/lojas", nil, env.ErrorMessage(), "")
		return
	}
	redirectList(w, r, "/lojas", nil, "", "Loja criada!")
}

// UpdateLoja handles the edit form submit for /lojas/{id}.
func (h *Handler) UpdateLoja(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		redirectList(w, r, "/lojas", nil, erroCSRF, "")
		return
	}

	id, err := parseID(r)
	if err != nil {
		redirectList(w, r, "/lojas", nil, "Loja inválida", "")
		return
	}

	in, err := parseLojaForm(r)
	if err != nil {
		redirectList(w, r, "/lojas", nil, err.Error(), "")
		return
	}

	patch := model.LojaPatch{Nome: &in.Nome, Endereco: &in.Endereco}
	if env := h.lojas.UpdateLoja(r.Context(), id, patch); !env.Success {
		redirectList(w, r, "/lojas", nil, env.ErrorMessage(), "")
		return
	}
	redirectList(w, r, "/lojas", nil, "", "Loja atualizada!")
}

// ToggleLoja flips a loja's ativo flag. The form carries the target value
// so a stale page cannot double-flip.
func (h *Handler) ToggleLoja(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		redirectList(w, r, "/lojas", nil, erroCSRF, "")
		return
	}

	id, err := parseID(r)
	if err != nil {
		redirectList(w, r, "/lojas", nil, "Loja inválida", "")
		return
	}

	ativo := r.FormValue("ativo") == "1"
	if env := h.lojas.ToggleLoja(r.Context(), id, ativo); !env.Success {
		redirectList(w, r, "/lojas", nil, env.ErrorMessage(), "")
		return
	}
	redirectList(w, r, "/lojas", nil, "", "")
}

// DeleteLoja removes a loja.
func (h *Handler) DeleteLoja(w http.ResponseWriter, r *http.Request) {
	if !validateCSRF(r) {
		redirectList(w, r, "/lojas", nil, erroCSRF, "")
		return
	}

	id, err := parseID(r)
	if err != nil {
		redirectList(w, r, "/lojas", nil, "Loja inválida", "")
		return
	}

	if env := h.lojas.DeleteLoja(r.Context(), id); !env.Success {
		redirectList(w, r, "/lojas", nil, env.ErrorMessage(), "")
		return
	}
	redirectList(w, r, "/lojas", nil, "", "Loja excluída!")
}
