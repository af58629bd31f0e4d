package web

import (
	"strconv"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/rafaeltov/acessopainel/internal/domain/model"
)

type sistemasPageData struct {
	Admin           *model.Admin
	Sistemas        []model.Sistema
	Editando        *model.Sistema
	IncluirInativos bool
	Erro            string
	Msg             string
	CSRF            string
}

func sistemasPage(d sistemasPageData) Node {
	// Mutation forms carry the listing switch so the redirect lands on
	// the same view.
	var keepSwitch Node
	listHref := "/sistemas"
	if d.IncluirInativos {
		keepSwitch = Input(Type("hidden"), Name("incluir_inativos"), Value("1"))
		listHref = "/sistemas?incluir_inativos=1"
	}

	rows := make([]Node, 0, len(d.Sistemas))
	for i := range d.Sistemas {
		s := d.Sistemas[i]
		id := strconv.FormatInt(s.ID, 10)
		urlCell := Node(Text("-"))
		if s.URL != "" {
			urlCell = A(Href(s.URL), Target("_blank"), Rel("noopener"), Text(s.URL))
		}
		editHref := "/sistemas?editar=" + id
		if d.IncluirInativos {
			editHref += "&incluir_inativos=1"
		}
		rows = append(rows, Tr(
			Td(Text(s.Nome)),
			Td(Text(valueOrDash(s.Descricao))),
			Td(urlCell),
			Td(statusBadge(s.Ativo)),
			Td(
				Class("actions"),
				A(Href(editHref), Class("btn"), Text("Editar")),
				toggleForm("/sistemas/"+id+"/toggle", s.Ativo, d.CSRF, keepSwitch),
				deleteForm("/sistemas/"+id+"/delete", "Excluir o sistema \""+s.Nome+"\"?", d.CSRF, keepSwitch),
			),
		))
	}

	switchLabel := "Mostrar inativos"
	switchHref := "/sistemas?incluir_inativos=1"
	if d.IncluirInativos {
		switchLabel = "Ocultar inativos"
		switchHref = "/sistemas"
	}

	formTitle := "Novo sistema"
	action := "/sistemas"
	var nome, descricao, urlValue string
	if d.Editando != nil {
		formTitle = "Editar sistema"
		action = "/sistemas/" + strconv.FormatInt(d.Editando.ID, 10)
		nome = d.Editando.Nome
		descricao = d.Editando.Descricao
		urlValue = d.Editando.URL
	}

	return appPage(
		"Sistemas",
		"sistemas",
		d.Admin,
		d.CSRF,
		flash(d.Erro, d.Msg),
		Div(
			Class("card"),
			H2(Text(formTitle)),
			Form(
				Method("post"),
				Action(action),
				Class("entity-form"),
				csrfField(d.CSRF),
				keepSwitch,
				Label(For("nome"), Text("Nome")),
				Input(Type("text"), ID("nome"), Name("nome"), Value(nome), Required()),
				Label(For("descricao"), Text("Descrição")),
				Input(Type("text"), ID("descricao"), Name("descricao"), Value(descricao)),
				Label(For("url"), Text("URL")),
				Input(Type("url"), ID("url"), Name("url"), Value(urlValue), Placeholder("https://")),
				Div(
					Class("form-actions"),
					Button(Type("submit"), Class("primary"), Text("Salvar")),
					If(d.Editando != nil, A(Href(listHref), Class("btn"), Text("Cancelar"))),
				),
			),
		),
		Div(
			Class("card table-wrap"),
			Div(
				Class("table-toolbar"),
				A(Href(switchHref), Class("btn"), Text(switchLabel)),
			),
			Table(
				THead(Tr(
					Th(Text("Nome")),
					Th(Text("Descrição")),
					Th(Text("URL")),
					Th(Text("Status")),
					Th(Text("Ações")),
				)),
				TBody(Group(rows)),
			),
			If(len(d.Sistemas) == 0, P(Class("muted"), Text("Nenhum sistema cadastrado."))),
		),
	)
}
