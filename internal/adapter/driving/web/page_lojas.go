package web

import (
	"strconv"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/rafaeltov/acessopainel/internal/domain/model"
)

type lojasPageData struct {
	Admin    *model.Admin
	Lojas    []model.Loja
	Editando *model.Loja
	Erro     string
	Msg      string
	CSRF     string
}

func lojasPage(d lojasPageData) Node {
	rows := make([]Node, 0, len(d.Lojas))
	for i := range d.Lojas {
		l := d.Lojas[i]
		id := strconv.FormatInt(l.ID, 10)
		rows = append(rows, Tr(
			Td(Text(l.Nome)),
			Td(Text(valueOrDash(l.Endereco))),
			Td(statusBadge(l.Ativo)),
			Td(Text(l.CriadoEm)),
			Td(
				Class("actions"),
				A(Href("/lojas?editar="+id), Class("btn"), Text("Editar")),
				toggleForm("/lojas/"+id+"/toggle", l.Ativo, d.CSRF, nil),
				deleteForm("/lojas/"+id+"/delete", "Excluir a loja \""+l.Nome+"\"?", d.CSRF, nil),
			),
		))
	}

	formTitle := "Nova loja"
	action := "/lojas"
	var nome, endereco string
	if d.Editando != nil {
		formTitle = "Editar loja"
		action = "/lojas/" + strconv.FormatInt(d.Editando.ID, 10)
		nome = d.Editando.Nome
		endereco = d.Editando.Endereco
	}

	return appPage(
		"Lojas",
		"lojas",
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
				Label(For("nome"), Text("Nome")),
				Input(Type("text"), ID("nome"), Name("nome"), Value(nome), Required()),
				Label(For("endereco"), Text("Endereço")),
				Input(Type("text"), ID("endereco"), Name("endereco"), Value(endereco)),
				Div(
					Class("form-actions"),
					Button(Type("submit"), Class("primary"), Text("Salvar")),
					If(d.Editando != nil, A(Href("/lojas"), Class("btn"), Text("Cancelar"))),
				),
			),
		),
		Div(
			Class("card table-wrap"),
			Table(
				THead(Tr(
					Th(Text("Nome")),
					Th(Text("Endereço")),
					Th(Text("Status")),
					Th(Text("Criada em")),
					Th(Text("Ações")),
				)),
				TBody(Group(rows)),
			),
			If(len(d.Lojas) == 0, P(Class("muted"), Text("Nenhuma loja cadastrada."))),
		),
	)
}

// toggleForm posts the target value of the ativo flag, so a stale page
// cannot double-flip it. extra carries page-specific hidden fields.
func toggleForm(action string, ativo bool, csrf string, extra Node) Node {
	label := "Desativar"
	target := "0"
	if !ativo {
		label = "Ativar"
		target = "1"
	}
	return Form(
		Method("post"),
		Action(action),
		Class("inline"),
		csrfField(csrf),
		extra,
		Input(Type("hidden"), Name("ativo"), Value(target)),
		Button(Type("submit"), Class("secondary"), Text(label)),
	)
}

// deleteForm posts a removal; app.js intercepts submit to confirm.
func deleteForm(action, confirm, csrf string, extra Node) Node {
	return Form(
		Method("post"),
		Action(action),
		Class("inline"),
		Data("confirm", confirm),
		csrfField(csrf),
		extra,
		Button(Type("submit"), Class("danger"), Text("Excluir")),
	)
}
