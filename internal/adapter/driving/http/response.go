package httphandler

import (
	"encoding/json"
	"net/http"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// SessionResponse describes the console's session with the directory API.
// Admin is present only when authenticated.
type SessionResponse struct {
	Loading       bool           `json:"loading"`
	Authenticated bool           `json:"authenticated"`
	Admin         *AdminResponse `json:"admin,omitempty"`
}

// AdminResponse is the JSON representation of the authenticated admin.
type AdminResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Nome     string `json:"nome"`
}

// StatsResponse carries the dashboard counts. Disponivel is false when
// any of the directory listings could not be fetched; the counts then
// cover only what did arrive.
type StatsResponse struct {
	Lojas        int  `json:"lojas"`
	Sistemas     int  `json:"sistemas"`
	Funcionarios int  `json:"funcionarios"`
	Acessos      int  `json:"acessos"`
	Disponivel   bool `json:"disponivel"`
}
