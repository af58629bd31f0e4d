package model

import "errors"

// TipoFuncionario distinguishes staff assigned to a loja from central de
// vendas staff classified by setor.
type TipoFuncionario string

const (
	TipoLoja          TipoFuncionario = "loja"
	TipoCentralVendas TipoFuncionario = "central_vendas"
)

// Setor is the fixed sector enumeration for central de vendas staff.
type Setor string

const (
	SetorCartao     Setor = "cartao"
	SetorConsignado Setor = "consignado"
	SetorEnergia    Setor = "energia"
	SetorFGTS       Setor = "fgts"
)

// Setores lists all valid setores in display order.
var Setores = []Setor{SetorCartao, SetorConsignado, SetorEnergia, SetorFGTS}

// Label returns the human-readable name of a setor.
func (s Setor) Label() string {
	switch s {
	case SetorCartao:
		return "Cartão"
	case SetorConsignado:
		return "Consignado"
	case SetorEnergia:
		return "Energia"
	case SetorFGTS:
		return "FGTS"
	}
	return string(s)
}

// Valid reports whether s is one of the known setores.
func (s Setor) Valid() bool {
	switch s {
	case SetorCartao, SetorConsignado, SetorEnergia, SetorFGTS:
		return true
	}
	return false
}

// Funcionario is a staff member. Exactly one of LojaID or Setor is set,
// according to Tipo: loja staff carry a loja reference, central de vendas
// staff carry a setor. The API may embed the referenced Loja and the
// funcionário's acessos on list responses.
type Funcionario struct {
	ID       int64           `json:"id"`
	Nome     string          `json:"nome"`
	Email    string          `json:"email,omitempty"`
	Tipo     TipoFuncionario `json:"tipo"`
	LojaID   *int64          `json:"loja_id,omitempty"`
	Setor    *Setor          `json:"setor,omitempty"`
	Ativo    bool            `json:"ativo"`
	CriadoEm string          `json:"created_at"`
	Loja     *Loja           `json:"loja,omitempty"`
	Acessos  []Acesso        `json:"acessos,omitempty"`
}

// Vinculo returns the display name of the funcionário's assignment: the
// loja name for loja staff, the setor label for central de vendas staff.
func (f Funcionario) Vinculo() string {
	if f.Tipo == TipoLoja {
		if f.Loja != nil {
			return f.Loja.Nome
		}
		return "Loja não definida"
	}
	if f.Setor != nil {
		return f.Setor.Label()
	}
	return "Setor não definido"
}

var (
	// ErrVinculoLoja is returned when a loja funcionário has no loja set.
	ErrVinculoLoja = errors.New("funcionário do tipo loja precisa de uma loja")
	// ErrVinculoSetor is returned when a central de vendas funcionário has
	// no setor set, or an unknown one.
	ErrVinculoSetor = errors.New("funcionário da central de vendas precisa de um setor válido")
	// ErrTipoInvalido is returned for an unknown tipo value.
	ErrTipoInvalido = errors.New("tipo de funcionário inválido")
)

// FuncionarioInput is the payload for creating or replacing a funcionário.
type FuncionarioInput struct {
	Nome   string          `json:"nome"`
	Email  string          `json:"email,omitempty"`
	Tipo   TipoFuncionario `json:"tipo"`
	LojaID *int64          `json:"loja_id,omitempty"`
	Setor  *Setor          `json:"setor,omitempty"`
	Ativo  bool            `json:"ativo"`
}

// Normalize clears the vínculo field that does not belong to the selected
// tipo: loja staff keep only LojaID, central de vendas staff keep only
// Setor. Switching tipo on a pre-filled form therefore never produces a
// payload with both set.
func (in *FuncionarioInput) Normalize() {
	switch in.Tipo {
	case TipoLoja:
		in.Setor = nil
	case TipoCentralVendas:
		in.LojaID = nil
	}
}

// Validate checks the tipo/vínculo pairing after Normalize: exactly one of
// LojaID or Setor must be set, matching the tipo.
func (in FuncionarioInput) Validate() error {
	switch in.Tipo {
	case TipoLoja:
		if in.LojaID == nil || *in.LojaID == 0 {
			return ErrVinculoLoja
		}
		if in.Setor != nil {
			return ErrVinculoSetor
		}
	case TipoCentralVendas:
		if in.Setor == nil || !in.Setor.Valid() {
			return ErrVinculoSetor
		}
		if in.LojaID != nil {
			return ErrVinculoLoja
		}
	default:
		return ErrTipoInvalido
	}
	return nil
}

// FuncionarioPatch is a partial update payload; nil fields are not sent.
type FuncionarioPatch struct {
	Nome   *string          `json:"nome,omitempty"`
	Email  *string          `json:"email,omitempty"`
	Tipo   *TipoFuncionario `json:"tipo,omitempty"`
	LojaID *int64           `json:"loja_id,omitempty"`
	Setor  *Setor           `json:"setor,omitempty"`
	Ativo  *bool            `json:"ativo,omitempty"`
}
