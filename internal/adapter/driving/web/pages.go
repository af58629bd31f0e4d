package web

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/rafaeltov/acessopainel/internal/domain/model"
)

type navItem struct {
	Label string
	Href  string
	Key   string
}

var navItems = []navItem{
	{Label: "Dashboard", Href: "/dashboard", Key: "dashboard"},
	{Label: "Lojas", Href: "/lojas", Key: "lojas"},
	{Label: "Sistemas", Href: "/sistemas", Key: "sistemas"},
	{Label: "Funcionários", Href: "/funcionarios", Key: "funcionarios"},
}

func pageHead(title string) Node {
	return Head(
		Meta(Charset("utf-8")),
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
		TitleEl(Text(title+" | Painel de Acessos")),
		Link(Rel("stylesheet"), Href("/static/app.css")),
		Script(Src("/static/app.js"), Defer()),
	)
}

// appPage is the shared authenticated layout: sidebar navigation, the
// logged-in admin with a logout form, and the page body.
func appPage(title, active string, admin *model.Admin, csrf string, body ...Node) Node {
	nav := make([]Node, 0, len(navItems))
	for _, item := range navItems {
		className := ""
		if item.Key == active {
			className = "active"
		}
		nav = append(nav, A(Href(item.Href), Class(className), Text(item.Label)))
	}

	adminLabel := "desconhecido"
	if admin != nil {
		adminLabel = admin.DisplayName()
	}

	return HTML(
		Lang("pt-BR"),
		pageHead(title),
		Body(
			Main(
				Class("layout"),
				Aside(
					Class("sidebar"),
					Div(Class("brand"), Strong(Text("Painel de Acessos"))),
					Nav(Class("nav"), Group(nav)),
					Div(
						Class("sidebar-footer"),
						P(Class("muted"), Text("Logado como "+adminLabel)),
						Form(
							Method("post"),
							Action("/logout"),
							csrfField(csrf),
							Button(Type("submit"), Class("secondary"), Text("Sair")),
						),
					),
				),
				Section(
					Class("content"),
					H1(Class("page-title"), Text(title)),
					Group(body),
				),
			),
		),
	)
}

// loadingPage is shown while the startup session check is still in
// flight. It refreshes itself until the guard settles on a real answer.
func loadingPage() Node {
	return HTML(
		Lang("pt-BR"),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			Meta(Attr("http-equiv", "refresh"), Content("2")),
			TitleEl(Text("Carregando | Painel de Acessos")),
			Link(Rel("stylesheet"), Href("/static/app.css")),
		),
		Body(
			Main(
				Class("center"),
				P(Text("Verificando sessão...")),
				P(Class("muted"), Text("A página será recarregada automaticamente.")),
			),
		),
	)
}

// flash renders the banner for the current redirect cycle; erro wins
// over msg when both are present.
func flash(erro, msg string) Node {
	if erro != "" {
		return Div(Class("banner banner-erro"), Text(erro))
	}
	if msg != "" {
		return Div(Class("banner banner-ok"), Text(msg))
	}
	return nil
}

func csrfField(token string) Node {
	return Input(Type("hidden"), Name(csrfFormField), Value(token))
}

func statusBadge(ativo bool) Node {
	if ativo {
		return Span(Class("badge badge-ativo"), Text("Ativo"))
	}
	return Span(Class("badge badge-inativo"), Text("Inativo"))
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
