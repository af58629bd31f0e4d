package model

// FiltrosFuncionario is the client-side filter set for the funcionário
// listing. Every field is independently optional; zero values are omitted
// from the generated query string entirely (never sent as empty or null).
// The url tags feed go-querystring: incluir_inativos encodes as 1 when
// set, matching what the API expects.
type FiltrosFuncionario struct {
	Nome            string `url:"nome,omitempty"`
	LojaID          int64  `url:"loja_id,omitempty"`
	Setor           Setor  `url:"setor,omitempty"`
	SistemaID       int64  `url:"sistema_id,omitempty"`
	IncluirInativos bool   `url:"incluir_inativos,omitempty,int"`
}

// Vazio reports whether no filter field is set.
func (f FiltrosFuncionario) Vazio() bool {
	return f == FiltrosFuncionario{}
}
