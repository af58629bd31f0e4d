package model

// Admin is the authenticated operator of the console, as returned by the
// directory API's login and check-session endpoints.
type Admin struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Nome     string `json:"nome"`
}

// DisplayName returns the admin's display name, falling back to the
// username when the API did not provide one.
func (a Admin) DisplayName() string {
	if a.Nome != "" {
		return a.Nome
	}
	return a.Username
}
