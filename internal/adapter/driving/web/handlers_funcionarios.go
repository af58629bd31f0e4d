package web

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/rafaeltov/acessopainel/internal/domain/model"
)

// formFiltros recovers the filter set a mutation form carried as hidden
// filtro_* fields (prefixed so they never collide with the form's own
// nome/loja_id/setor fields), so the post-redirect-get cycle lands back
// on the same listing.
func formFiltros(r *http.Request) url.Values {
	_ = r.ParseForm()
	q := url.Values{}
	for _, name := range filtroNames {
		if v := r.Form.Get("filtro_" + name); v != "" {
			q.Set(name, v)
		}
	}
	return filtroQuery(parseFiltros(q))
}

// Funcionarios renders the funcionário listing: filter bar, expandable
// rows with each funcionário's acessos, and the create/edit form.
// Rendered senhas are masked but present in the page source, so the
// response must never be cached.
func (h *Handler) Funcionarios(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	token := ensureCSRF(w, r)
	q := r.URL.Query()

	data := funcionariosPageData{
		Admin:   h.sessions.Admin(),
		Filtros: parseFiltros(q),
		Erro:    q.Get("erro"),
		Msg:     q.Get("msg"),
		CSRF:    token,
	}
	if id, err := parseQueryID(q.Get("aberto")); err == nil {
		data.Aberto = id
	}

	// Selects need lojas and sistemas regardless of the listing result.
	if env := h.lojas.ListLojas(r.Context()); env.Ok() {
		data.Lojas = *env.Data
	}
	if env := h.sistemas.ListSistemas(r.Context(), false); env.Ok() {
		data.Sistemas = *env.Data
	}

	env := h.funcionarios.ListFuncionarios(r.Context(), data.Filtros)
	if env.Ok() {
		data.Funcionarios = *env.Data
	} else if data.Erro == "" {
		data.Erro = env.ErrorMessage()
	}

	if id, err := parseQueryID(q.Get("editar")); err == nil {
		for i := range data.Funcionarios {
			if data.Funcionarios[i].ID == id {
				data.Editando = &data.Funcionarios[i]
				break
			}
		}
	}

	h.render(w, http.StatusOK, funcionariosPage(data))
}

// CreateFuncionario handles the create form submit. The payload is
// normalized and validated before anything goes on the wire: tipo=loja
// carries only loja_id, tipo=central_vendas carries only setor.
func (h *Handler) CreateFuncionario(w http.ResponseWriter, r *http.Request) {
	back := formFiltros(r)
	if !validateCSRF(r) {
		redirectList(w, r, "/funcionarios", back, erroCSRF, "")
		return
	}

	in, err := parseFuncionarioForm(r)
	if err != nil {
		redirectList(w, r, "/funcionarios", back, err.Error(), "")
		return
	}

	if env := h.funcionarios.CreateFuncionario(r.Context(), in); !env.Success {
		redirectList(w, r, "/funcionarios", back, env.ErrorMessage(), "")
		return
	}
	redirectList(w, r, "/funcionarios", back, "", "Funcionário criado!")
}

// UpdateFuncionario handles the edit form submit for /funcionarios/{id}.
func (h *Handler) UpdateFuncionario(w http.ResponseWriter, r *http.Request) {
	back := formFiltros(r)
	if !validateCSRF(r) {
		redirectList(w, r, "/funcionarios", back, erroCSRF, "")
		return
	}

	id, err := parseID(r)
	if err != nil {
		redirectList(w, r, "/funcionarios", back, "Funcionário inválido", "")
		return
	}

	in, err := parseFuncionarioForm(r)
	if err != nil {
		redirectList(w, r, "/funcionarios", back, err.Error(), "")
		return
	}

	patch := model.FuncionarioPatch{
		Nome:   &in.Nome,
		Email:  &in.Email,
		Tipo:   &in.Tipo,
		LojaID: in.LojaID,
		Setor:  in.Setor,
	}
	if env := h.funcionarios.UpdateFuncionario(r.Context(), id, patch); !env.Success {
		redirectList(w, r, "/funcionarios", back, env.ErrorMessage(), "")
		return
	}
	redirectList(w, r, "/funcionarios", back, "", "Funcionário atualizado!")
}

// ToggleFuncionario flips a funcionário's ativo flag.
func (h *Handler) ToggleFuncionario(w http.ResponseWriter, r *http.Request) {
	back := formFiltros(r)
	if !validateCSRF(r) {
		redirectList(w, r, "/funcionarios", back, erroCSRF, "")
		return
	}

	id, err := parseID(r)
	if err != nil {
		redirectList(w, r, "/funcionarios", back, "Funcionário inválido", "")
		return
	}

	ativo := r.FormValue("ativo") == "1"
	if env := h.funcionarios.ToggleFuncionario(r.Context(), id, ativo); !env.Success {
		redirectList(w, r, "/funcionarios", back, env.ErrorMessage(), "")
		return
	}
	redirectList(w, r, "/funcionarios", back, "", "")
}

// DeleteFuncionario removes a funcionário and, through the API, its
// acessos.
func (h *Handler) DeleteFuncionario(w http.ResponseWriter, r *http.Request) {
	back := formFiltros(r)
	if !validateCSRF(r) {
		redirectList(w, r, "/funcionarios", back, erroCSRF, "")
		return
	}

	id, err := parseID(r)
	if err != nil {
		redirectList(w, r, "/funcionarios", back, "Funcionário inválido", "")
		return
	}

	if env := h.funcionarios.DeleteFuncionario(r.Context(), id); !env.Success {
		redirectList(w, r, "/funcionarios", back, env.ErrorMessage(), "")
		return
	}
	redirectList(w, r, "/funcionarios", back, "", "Funcionário excluído!")
}

// CreateAcesso adds a credential row to a funcionário from the inline
// form inside its expanded row.
func (h *Handler) CreateAcesso(w http.ResponseWriter, r *http.Request) {
	back := formFiltros(r)
	if !validateCSRF(r) {
		redirectList(w, r, "/funcionarios", back, erroCSRF, "")
		return
	}

	in, err := parseAcessoForm(r)
	if err != nil {
		redirectList(w, r, "/funcionarios", back, err.Error(), "")
		return
	}
	back.Set("aberto", strconv.FormatInt(in.FuncionarioID, 10))

	if env := h.acessos.CreateAcesso(r.Context(), in); !env.Success {
		redirectList(w, r, "/funcionarios", back, env.ErrorMessage(), "")
		return
	}
	redirectList(w, r, "/funcionarios", back, "", "Acesso adicionado!")
}

// DeleteAcesso removes one credential row.
func (h *Handler) DeleteAcesso(w http.ResponseWriter, r *http.Request) {
	back := formFiltros(r)
	if !validateCSRF(r) {
		redirectList(w, r, "/funcionarios", back, erroCSRF, "")
		return
	}

	id, err := parseID(r)
	if err != nil {
		redirectList(w, r, "/funcionarios", back, "Acesso inválido", "")
		return
	}
	if fid := formInt64(r, "funcionario_id"); fid != nil {
		back.Set("aberto", strconv.FormatInt(*fid, 10))
	}

	if env := h.acessos.DeleteAcesso(r.Context(), id); !env.Success {
		redirectList(w, r, "/funcionarios", back, env.ErrorMessage(), "")
		return
	}
	redirectList(w, r, "/funcionarios", back, "", "Acesso removido!")
}
