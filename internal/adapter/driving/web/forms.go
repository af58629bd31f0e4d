package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rafaeltov/acessopainel/internal/domain/model"
)

var (
	errNomeObrigatorio    = errors.New("Nome é obrigatório")
	errCamposObrigatorios = errors.New("Preencha todos os campos obrigatórios")
)

// parseID reads the {id} path segment.
func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// parseQueryID parses an id carried in a query parameter.
func parseQueryID(v string) (int64, error) {
	return strconv.ParseInt(v, 10, 64)
}

// formInt64 parses an optional numeric form field; empty or invalid
// values come back as nil.
func formInt64(r *http.Request, name string) *int64 {
	v := strings.TrimSpace(r.FormValue(name))
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n == 0 {
		return nil
	}
	return &n
}

func parseLojaForm(r *http.Request) (model.LojaInput, error) {
	in := model.LojaInput{
		Nome:     strings.TrimSpace(r.FormValue("nome")),
		Endereco: strings.TrimSpace(r.FormValue("endereco")),
		Ativo:    true,
	}
	if in.Nome == "" {
		return in, errNomeObrigatorio
	}
	return in, nil
}

func parseSistemaForm(r *http.Request) (model.SistemaInput, error) {
	in := model.SistemaInput{
		Nome:      strings.TrimSpace(r.FormValue("nome")),
		Descricao: strings.TrimSpace(r.FormValue("descricao")),
		URL:       strings.TrimSpace(r.FormValue("url")),
		Ativo:     true,
	}
	if in.Nome == "" {
		return in, errNomeObrigatorio
	}
	return in, nil
}

// parseFuncionarioForm builds a normalized funcionário payload from the
// form. Normalization clears the vínculo that does not match the selected
// tipo, so a form whose tipo was switched never submits both; validation
// then guarantees exactly one is set.
func parseFuncionarioForm(r *http.Request) (model.FuncionarioInput, error) {
	in := model.FuncionarioInput{
		Nome:   strings.TrimSpace(r.FormValue("nome")),
		Email:  strings.TrimSpace(r.FormValue("email")),
		Tipo:   model.TipoFuncionario(r.FormValue("tipo")),
		LojaID: formInt64(r, "loja_id"),
		Ativo:  true,
	}
	if setor := model.Setor(r.FormValue("setor")); setor != "" {
		in.Setor = &setor
	}

	if in.Nome == "" {
		return in, errNomeObrigatorio
	}

	in.Normalize()
	if err := in.Validate(); err != nil {
		return in, err
	}
	return in, nil
}

func parseAcessoForm(r *http.Request) (model.AcessoInput, error) {
	in := model.AcessoInput{
		Usuario:    strings.TrimSpace(r.FormValue("usuario")),
		Senha:      r.FormValue("senha"),
		Observacao: strings.TrimSpace(r.FormValue("observacao")),
	}
	if id := formInt64(r, "funcionario_id"); id != nil {
		in.FuncionarioID = *id
	}
	if id := formInt64(r, "sistema_id"); id != nil {
		in.SistemaID = *id
	}

	if in.FuncionarioID == 0 || in.SistemaID == 0 || in.Usuario == "" || in.Senha == "" {
		return in, errCamposObrigatorios
	}
	return in, nil
}

// filtroNames lists the query parameter names of the funcionário filter
// set, shared by the listing URL and the hidden filtro_* form fields.
var filtroNames = []string{"nome", "loja_id", "setor", "sistema_id", "incluir_inativos"}

// parseFiltros reads the funcionário filter set from the listing's query
// string. Absent or malformed values simply stay unset.
func parseFiltros(q url.Values) model.FiltrosFuncionario {
	filtros := model.FiltrosFuncionario{
		Nome:            strings.TrimSpace(q.Get("nome")),
		IncluirInativos: q.Get("incluir_inativos") == "1",
	}
	if id, err := strconv.ParseInt(q.Get("loja_id"), 10, 64); err == nil && id > 0 {
		filtros.LojaID = id
	}
	if id, err := strconv.ParseInt(q.Get("sistema_id"), 10, 64); err == nil && id > 0 {
		filtros.SistemaID = id
	}
	if setor := model.Setor(q.Get("setor")); setor.Valid() {
		filtros.Setor = setor
	}
	return filtros
}

// filtroQuery turns the filter set back into listing query values, used
// to keep the current filters across the post-redirect-get cycle.
func filtroQuery(filtros model.FiltrosFuncionario) url.Values {
	q := url.Values{}
	if filtros.Nome != "" {
		q.Set("nome", filtros.Nome)
	}
	if filtros.LojaID > 0 {
		q.Set("loja_id", strconv.FormatInt(filtros.LojaID, 10))
	}
	if filtros.Setor != "" {
		q.Set("setor", string(filtros.Setor))
	}
	if filtros.SistemaID > 0 {
		q.Set("sistema_id", strconv.FormatInt(filtros.SistemaID, 10))
	}
	if filtros.IncluirInativos {
		q.Set("incluir_inativos", "1")
	}
	return q
}

// redirectList sends the browser back to a listing path, carrying the
// given query values plus an optional erro or msg banner.
func redirectList(w http.ResponseWriter, r *http.Request, path string, q url.Values, erro, msg string) {
	if q == nil {
		q = url.Values{}
	}
	if erro != "" {
		q.Set("erro", erro)
	}
	if msg != "" {
		q.Set("msg", msg)
	}
	target := path
	if enc := q.Encode(); enc != "" {
		target += "?" + enc
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
