package model

// Loja is a physical retail unit that can employ staff.
type Loja struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome"`
	Endereco string `json:"endereco,omitempty"`
	Ativo    bool   `json:"ativo"`
	CriadoEm string `json:"created_at"` // MySQL datetime string, display only
}

// LojaInput is the payload for creating a loja.
type LojaInput struct {
	Nome     string `json:"nome"`
	Endereco string `json:"endereco,omitempty"`
	Ativo    bool   `json:"ativo"`
}

// LojaPatch is a partial update payload. Nil fields are omitted from the
// request body entirely, so the API only touches what was sent.
type LojaPatch struct {
	Nome     *string `json:"nome,omitempty"`
	Endereco *string `json:"endereco,omitempty"`
	Ativo    *bool   `json:"ativo,omitempty"`
}
