package web

import (
	"strconv"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/rafaeltov/acessopainel/internal/application"
	"github.com/rafaeltov/acessopainel/internal/domain/model"
)

func dashboardPage(admin *model.Admin, ov application.Overview, erro, csrf string) Node {
	return appPage(
		"Dashboard",
		"dashboard",
		admin,
		csrf,
		flash(erro, ""),
		Div(
			Class("stat-grid"),
			statCard("Lojas", ov.Lojas, "/lojas"),
			statCard("Sistemas", ov.Sistemas, "/sistemas"),
			statCard("Funcionários", ov.Funcionarios, "/funcionarios"),
			statCard("Acessos", ov.Acessos, "/funcionarios"),
		),
	)
}

func statCard(label string, count int, href string) Node {
	return A(
		Href(href),
		Class("stat-card"),
		Strong(Class("stat-value"), Text(strconv.Itoa(count))),
		Span(Class("stat-label"), Text(label)),
	)
}
