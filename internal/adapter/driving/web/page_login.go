package web

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func loginPage(erro, csrf string) Node {
	return HTML(
		Lang("pt-BR"),
		pageHead("Entrar"),
		Body(
			Class("login-body"),
			Main(
				Class("login-wrap"),
				H1(Text("Painel de Acessos")),
				P(Class("muted"), Text("Acesso restrito à administração.")),
				flash(erro, ""),
				Form(
					Method("post"),
					Action("/login"),
					Class("login-form"),
					csrfField(csrf),
					Label(For("username"), Text("Usuário")),
					Input(Type("text"), ID("username"), Name("username"), Required(), AutoComplete("username"), AutoFocus()),
					Label(For("password"), Text("Senha")),
					Input(Type("password"), ID("password"), Name("password"), Required(), AutoComplete("current-password")),
					Button(Type("submit"), Class("primary"), Text("Entrar")),
				),
			),
		),
	)
}
