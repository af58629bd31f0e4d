package model

// Sistema is an external application for which credentials are issued.
type Sistema struct {
	ID        int64  `json:"id"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao,omitempty"`
	URL       string `json:"url,omitempty"`
	Ativo     bool   `json:"ativo"`
	CriadoEm  string `json:"created_at"`
}

// SistemaInput is the payload for creating a sistema.
type SistemaInput struct {
	Nome      string `json:"nome"`
	Descricao string `json:"descricao,omitempty"`
	URL       string `json:"url,omitempty"`
	Ativo     bool   `json:"ativo"`
}

// SistemaPatch is a partial update payload; nil fields are not sent.
type SistemaPatch struct {
	Nome      *string `json:"nome,omitempty"`
	Descricao *string `json:"descricao,omitempty"`
	URL       *string `json:"url,omitempty"`
	Ativo     *bool   `json:"ativo,omitempty"`
}
