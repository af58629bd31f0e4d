package web

import "net/http"

// protected gates a handler on the session state machine:
//
//	LOADING         -> placeholder page, auto-refreshing; no protected content
//	UNAUTHENTICATED -> redirect to /login; no protected content, even transiently
//	AUTHENTICATED   -> serve the guarded handler
//
// The decision is re-evaluated on every request; nothing is cached across
// navigations.
func (h *Handler) protected(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case h.sessions.IsLoading():
			w.Header().Set("Retry-After", "1")
			h.render(w, http.StatusServiceUnavailable, loadingPage())
		case !h.sessions.IsAuthenticated():
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		default:
			next(w, r)
		}
	}
}
