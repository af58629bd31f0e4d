package model

// Acesso is a username/senha pair granting a funcionário access to a
// sistema. The senha travels and is stored in clear form by the external
// API; the console masks it in rendered pages and only reveals it
// client-side.
type Acesso struct {
	ID            int64    `json:"id"`
	FuncionarioID int64    `json:"funcionario_id"`
	SistemaID     int64    `json:"sistema_id"`
	Usuario       string   `json:"usuario"`
	Senha         string   `json:"senha"`
	Observacao    string   `json:"observacao,omitempty"`
	CriadoEm      string   `json:"created_at"`
	Sistema       *Sistema `json:"sistema,omitempty"`
}

// SistemaNome returns the embedded sistema name when the API included it.
func (a Acesso) SistemaNome() string {
	if a.Sistema != nil {
		return a.Sistema.Nome
	}
	return ""
}

// AcessoInput is the payload for creating an acesso.
type AcessoInput struct {
	FuncionarioID int64  `json:"funcionario_id"`
	SistemaID     int64  `json:"sistema_id"`
	Usuario       string `json:"usuario"`
	Senha         string `json:"senha"`
	Observacao    string `json:"observacao,omitempty"`
}

// AcessoPatch is a partial update payload; nil fields are not sent.
type AcessoPatch struct {
	SistemaID  *int64  `json:"sistema_id,omitempty"`
	Usuario    *string `json:"usuario,omitempty"`
	Senha      *string `json:"senha,omitempty"`
	Observacao *string `json:"observacao,omitempty"`
}
