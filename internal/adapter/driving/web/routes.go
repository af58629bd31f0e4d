package web

import (
	"io/fs"
	"net/http"
)

// RegisterRoutes registers all web GUI routes on the provided mux.
// Static assets are served from the embedded filesystem at /static/*;
// everything under the listing paths sits behind the route guard.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Static assets (embedded via go:embed).
	staticFS, _ := fs.Sub(StaticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("GET /login", h.LoginPage)
	mux.HandleFunc("POST /login", h.LoginSubmit)
	mux.HandleFunc("POST /logout", h.Logout)

	mux.HandleFunc("GET /dashboard", h.protected(h.Dashboard))

	mux.HandleFunc("GET /lojas", h.protected(h.Lojas))
	mux.HandleFunc("POST /lojas", h.protected(h.CreateLoja))
	mux.HandleFunc("POST /lojas/{id}", h.protected(h.UpdateLoja))
	mux.HandleFunc("POST /lojas/{id}/toggle", h.protected(h.ToggleLoja))
	mux.HandleFunc("POST /lojas/{id}/delete", h.protected(h.DeleteLoja))

	mux.HandleFunc("GET /sistemas", h.protected(h.Sistemas))
	mux.HandleFunc("POST /sistemas", h.protected(h.CreateSistema))
	mux.HandleFunc("POST /sistemas/{id}", h.protected(h.UpdateSistema))
	mux.HandleFunc("POST /sistemas/{id}/toggle", h.protected(h.ToggleSistema))
	mux.HandleFunc("POST /sistemas/{id}/delete", h.protected(h.DeleteSistema))

	mux.HandleFunc("GET /funcionarios", h.protected(h.Funcionarios))
	mux.HandleFunc("POST /funcionarios", h.protected(h.CreateFuncionario))
	mux.HandleFunc("POST /funcionarios/{id}", h.protected(h.UpdateFuncionario))
	mux.HandleFunc("POST /funcionarios/{id}/toggle", h.protected(h.ToggleFuncionario))
	mux.HandleFunc("POST /funcionarios/{id}/delete", h.protected(h.DeleteFuncionario))

	mux.HandleFunc("POST /acessos", h.protected(h.CreateAcesso))
	mux.HandleFunc("POST /acessos/{id}/delete", h.protected(h.DeleteAcesso))
}
