package web

import (
	"strconv"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/rafaeltov/acessopainel/internal/domain/model"
)

type funcionariosPageData struct {
	Admin        *model.Admin
	Funcionarios []model.Funcionario
	Lojas        []model.Loja
	Sistemas     []model.Sistema
	Filtros      model.FiltrosFuncionario
	Editando     *model.Funcionario
	Aberto       int64
	Erro         string
	Msg          string
	CSRF         string
}

func funcionariosPage(d funcionariosPageData) Node {
	cards := make([]Node, 0, len(d.Funcionarios))
	for i := range d.Funcionarios {
		cards = append(cards, funcionarioCard(d, &d.Funcionarios[i]))
	}
	if len(cards) == 0 {
		cards = append(cards, Div(Class("card"), P(Class("muted"), Text("Nenhum funcionário encontrado."))))
	}

	return appPage(
		"Funcionários",
		"funcionarios",
		d.Admin,
		d.CSRF,
		flash(d.Erro, d.Msg),
		funcionarioForm(d),
		filtroBar(d),
		Group(cards),
	)
}

// filtroBar is the listing filter form. Selects and the checkbox submit
// on change (app.js); the text field submits on Enter or via the button.
func filtroBar(d funcionariosPageData) Node {
	f := d.Filtros
	return Div(
		Class("card"),
		Form(
			Method("get"),
			Action("/funcionarios"),
			Class("filtro-bar"),
			Data("auto-submit", ""),
			Div(
				Class("filtro-campo"),
				Label(For("filtro-nome"), Text("Nome")),
				Input(Type("search"), ID("filtro-nome"), Name("nome"), Value(f.Nome), Placeholder("Buscar por nome")),
			),
			Div(
				Class("filtro-campo"),
				Label(For("filtro-loja"), Text("Loja")),
				Select(
					ID("filtro-loja"),
					Name("loja_id"),
					Option(Value(""), Text("Todas")),
					lojaOptions(d.Lojas, f.LojaID),
				),
			),
			Div(
				Class("filtro-campo"),
				Label(For("filtro-setor"), Text("Setor")),
				Select(
					ID("filtro-setor"),
					Name("setor"),
					Option(Value(""), Text("Todos")),
					setorOptions(f.Setor),
				),
			),
			Div(
				Class("filtro-campo"),
				Label(For("filtro-sistema"), Text("Sistema")),
				Select(
					ID("filtro-sistema"),
					Name("sistema_id"),
					Option(Value(""), Text("Todos")),
					sistemaOptions(d.Sistemas, f.SistemaID),
				),
			),
			Label(
				Class("filtro-check"),
				Input(Type("checkbox"), Name("incluir_inativos"), Value("1"), If(f.IncluirInativos, Checked())),
				Text("Incluir inativos"),
			),
			Button(Type("submit"), Class("secondary"), Text("Filtrar")),
			If(!f.Vazio(), A(Href("/funcionarios"), Class("btn"), Text("Limpar"))),
		),
	)
}

// funcionarioForm is the create/edit card. The tipo select drives which
// vínculo field is visible (app.js); the handler normalizes anyway, so a
// stale submit with both fields still lands on exactly one.
func funcionarioForm(d funcionariosPageData) Node {
	formTitle := "Novo funcionário"
	action := "/funcionarios"
	var nome, email string
	tipo := model.TipoLoja
	var lojaID, setorSel = int64(0), model.Setor("")
	if d.Editando != nil {
		formTitle = "Editar funcionário"
		action = "/funcionarios/" + strconv.FormatInt(d.Editando.ID, 10)
		nome = d.Editando.Nome
		email = d.Editando.Email
		tipo = d.Editando.Tipo
		if d.Editando.LojaID != nil {
			lojaID = *d.Editando.LojaID
		}
		if d.Editando.Setor != nil {
			setorSel = *d.Editando.Setor
		}
	}

	return Div(
		Class("card"),
		H2(Text(formTitle)),
		Form(
			Method("post"),
			Action(action),
			Class("entity-form"),
			Data("tipo-switch", ""),
			csrfField(d.CSRF),
			filtroFields(d.Filtros),
			Label(For("func-nome"), Text("Nome")),
			Input(Type("text"), ID("func-nome"), Name("nome"), Value(nome), Required()),
			Label(For("func-email"), Text("E-mail")),
			Input(Type("email"), ID("func-email"), Name("email"), Value(email)),
			Label(For("func-tipo"), Text("Tipo")),
			Select(
				ID("func-tipo"),
				Name("tipo"),
				Option(Value(string(model.TipoLoja)), Text("Loja"), If(tipo == model.TipoLoja, Selected())),
				Option(Value(string(model.TipoCentralVendas)), Text("Central de vendas"), If(tipo == model.TipoCentralVendas, Selected())),
			),
			Div(
				Class("vinculo-loja"),
				Label(For("func-loja"), Text("Loja")),
				Select(
					ID("func-loja"),
					Name("loja_id"),
					Option(Value(""), Text("Selecione a loja")),
					lojaOptions(d.Lojas, lojaID),
				),
			),
			Div(
				Class("vinculo-setor"),
				Label(For("func-setor"), Text("Setor")),
				Select(
					ID("func-setor"),
					Name("setor"),
					Option(Value(""), Text("Selecione o setor")),
					setorOptions(setorSel),
				),
			),
			Div(
				Class("form-actions"),
				Button(Type("submit"), Class("primary"), Text("Salvar")),
				If(d.Editando != nil, A(Href(funcionariosHref(d.Filtros, "", 0)), Class("btn"), Text("Cancelar"))),
			),
		),
	)
}

// funcionarioCard is one expandable listing row: summary line, actions,
// the acessos table and the inline add-acesso form.
func funcionarioCard(d funcionariosPageData, f *model.Funcionario) Node {
	id := strconv.FormatInt(f.ID, 10)
	acessoRows := make([]Node, 0, len(f.Acessos))
	for i := range f.Acessos {
		a := f.Acessos[i]
		acessoID := strconv.FormatInt(a.ID, 10)
		var obs Node
		if a.Observacao != "" {
			obs = Div(Class("observacao"), Raw(RenderObservacao(a.Observacao)))
		}
		acessoRows = append(acessoRows, Tr(
			Td(Text(valueOrDash(a.SistemaNome()))),
			Td(
				Text(a.Usuario),
				Button(Type("button"), Class("btn btn-copy"), Data("copy", a.Usuario), Text("Copiar")),
			),
			Td(
				Span(Class("senha"), Data("senha", a.Senha), Text("••••••••")),
				Button(Type("button"), Class("btn btn-senha-toggle"), Text("Mostrar")),
				Button(Type("button"), Class("btn btn-senha-copy"), Text("Copiar")),
			),
			Td(obs),
			Td(deleteForm(
				"/acessos/"+acessoID+"/delete",
				"Excluir o acesso de "+a.Usuario+"?",
				d.CSRF,
				Group([]Node{
					filtroFields(d.Filtros),
					Input(Type("hidden"), Name("funcionario_id"), Value(id)),
				}),
			)),
		))
	}

	acessosBody := Node(P(Class("muted"), Text("Nenhum acesso cadastrado.")))
	if len(acessoRows) > 0 {
		acessosBody = Table(
			Class("acessos"),
			THead(Tr(
				Th(Text("Sistema")),
				Th(Text("Usuário")),
				Th(Text("Senha")),
				Th(Text("Observação")),
				Th(Text("")),
			)),
			TBody(Group(acessoRows)),
		)
	}

	return Details(
		Class("card funcionario"),
		If(f.ID == d.Aberto, Open()),
		Summary(
			Span(Class("funcionario-nome"), Text(f.Nome)),
			Span(Class("funcionario-vinculo muted"), Text(f.Vinculo())),
			statusBadge(f.Ativo),
			Span(Class("muted"), Text(strconv.Itoa(len(f.Acessos))+" acesso(s)")),
		),
		Div(
			Class("funcionario-meta"),
			P(Class("muted"), Text("E-mail: "+valueOrDash(f.Email))),
			P(Class("muted"), Text("Cadastrado em: "+valueOrDash(f.CriadoEm))),
			Div(
				Class("actions"),
				A(Href(funcionariosHref(d.Filtros, "editar", f.ID)), Class("btn"), Text("Editar")),
				toggleForm("/funcionarios/"+id+"/toggle", f.Ativo, d.CSRF, filtroFields(d.Filtros)),
				deleteForm("/funcionarios/"+id+"/delete", "Excluir \""+f.Nome+"\" e todos os seus acessos?", d.CSRF, filtroFields(d.Filtros)),
			),
		),
		acessosBody,
		Form(
			Method("post"),
			Action("/acessos"),
			Class("acesso-form"),
			csrfField(d.CSRF),
			filtroFields(d.Filtros),
			Input(Type("hidden"), Name("funcionario_id"), Value(id)),
			Select(
				Name("sistema_id"),
				Required(),
				Option(Value(""), Text("Sistema")),
				sistemaOptions(d.Sistemas, 0),
			),
			Input(Type("text"), Name("usuario"), Placeholder("Usuário"), Required()),
			Input(Type("text"), Name("senha"), Placeholder("Senha"), Required(), AutoComplete("off")),
			Input(Type("text"), Name("observacao"), Placeholder("Observação (markdown)")),
			Button(Type("submit"), Class("primary"), Text("Adicionar acesso")),
		),
	)
}

func lojaOptions(lojas []model.Loja, selected int64) Node {
	opts := make([]Node, 0, len(lojas))
	for _, l := range lojas {
		opts = append(opts, Option(
			Value(strconv.FormatInt(l.ID, 10)),
			Text(l.Nome),
			If(l.ID == selected, Selected()),
		))
	}
	return Group(opts)
}

func sistemaOptions(sistemas []model.Sistema, selected int64) Node {
	opts := make([]Node, 0, len(sistemas))
	for _, s := range sistemas {
		opts = append(opts, Option(
			Value(strconv.FormatInt(s.ID, 10)),
			Text(s.Nome),
			If(s.ID == selected, Selected()),
		))
	}
	return Group(opts)
}

func setorOptions(selected model.Setor) Node {
	opts := make([]Node, 0, len(model.Setores))
	for _, s := range model.Setores {
		opts = append(opts, Option(
			Value(string(s)),
			Text(s.Label()),
			If(s == selected, Selected()),
		))
	}
	return Group(opts)
}

// filtroFields embeds the current filter set in a mutation form as
// filtro_* hidden fields, prefixed so they never collide with the form's
// own nome/loja_id/setor/sistema_id fields.
func filtroFields(filtros model.FiltrosFuncionario) Node {
	q := filtroQuery(filtros)
	fields := make([]Node, 0, len(q))
	for _, name := range filtroNames {
		if v := q.Get(name); v != "" {
			fields = append(fields, Input(Type("hidden"), Name("filtro_"+name), Value(v)))
		}
	}
	return Group(fields)
}

// funcionariosHref builds a listing URL that keeps the current filters,
// optionally adding one extra id-valued parameter (editar, aberto).
func funcionariosHref(filtros model.FiltrosFuncionario, extra string, id int64) string {
	q := filtroQuery(filtros)
	if extra != "" {
		q.Set(extra, strconv.FormatInt(id, 10))
	}
	if enc := q.Encode(); enc != "" {
		return "/funcionarios?" + enc
	}
	return "/funcionarios"
}
