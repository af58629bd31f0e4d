package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lojaID(id int64) *int64 { return &id }

func setorPtr(s Setor) *Setor { return &s }

func TestNormalize_TipoLojaClearsSetor(t *testing.T) {
	in := FuncionarioInput{
		Tipo:   TipoLoja,
		LojaID: lojaID(3),
		Setor:  setorPtr(SetorCartao),
	}

	in.Normalize()

	assert.Nil(t, in.Setor)
	require.NotNil(t, in.LojaID)
	assert.Equal(t, int64(3), *in.LojaID)
}

func TestNormalize_TipoCentralVendasClearsLoja(t *testing.T) {
	in := FuncionarioInput{
		Tipo:   TipoCentralVendas,
		LojaID: lojaID(3),
		Setor:  setorPtr(SetorFGTS),
	}

	in.Normalize()

	assert.Nil(t, in.LojaID)
	require.NotNil(t, in.Setor)
	assert.Equal(t, SetorFGTS, *in.Setor)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      FuncionarioInput
		wantErr error
	}{
		{
			name:    "loja staff with loja",
			in:      FuncionarioInput{Tipo: TipoLoja, LojaID: lojaID(1)},
			wantErr: nil,
		},
		{
			name:    "loja staff without loja",
			in:      FuncionarioInput{Tipo: TipoLoja},
			wantErr: ErrVinculoLoja,
		},
		{
			name:    "loja staff with zero loja id",
			in:      FuncionarioInput{Tipo: TipoLoja, LojaID: lojaID(0)},
			wantErr: ErrVinculoLoja,
		},
		{
			name:    "central staff with setor",
			in:      FuncionarioInput{Tipo: TipoCentralVendas, Setor: setorPtr(SetorConsignado)},
			wantErr: nil,
		},
		{
			name:    "central staff without setor",
			in:      FuncionarioInput{Tipo: TipoCentralVendas},
			wantErr: ErrVinculoSetor,
		},
		{
			name:    "central staff with unknown setor",
			in:      FuncionarioInput{Tipo: TipoCentralVendas, Setor: setorPtr("rh")},
			wantErr: ErrVinculoSetor,
		},
		{
			name:    "unknown tipo",
			in:      FuncionarioInput{Tipo: "gerente"},
			wantErr: ErrTipoInvalido,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// A form submitted with both fields filled must come out of the
// Normalize-then-Validate pipeline with exactly one vínculo, whatever the
// tipo.
func TestNormalizeThenValidate_BothFieldsFilled(t *testing.T) {
	for _, tipo := range []TipoFuncionario{TipoLoja, TipoCentralVendas} {
		in := FuncionarioInput{
			Tipo:   tipo,
			LojaID: lojaID(2),
			Setor:  setorPtr(SetorEnergia),
		}
		in.Normalize()
		require.NoError(t, in.Validate(), "tipo %s", tipo)
		assert.True(t, (in.LojaID == nil) != (in.Setor == nil), "tipo %s: exactly one vínculo", tipo)
	}
}

func TestVinculo(t *testing.T) {
	loja := Loja{ID: 1, Nome: "Loja Centro"}
	setor := SetorCartao

	tests := []struct {
		name string
		f    Funcionario
		want string
	}{
		{"loja staff with embedded loja", Funcionario{Tipo: TipoLoja, Loja: &loja}, "Loja Centro"},
		{"loja staff without embedded loja", Funcionario{Tipo: TipoLoja}, "Loja não definida"},
		{"central staff with setor", Funcionario{Tipo: TipoCentralVendas, Setor: &setor}, "Cartão"},
		{"central staff without setor", Funcionario{Tipo: TipoCentralVendas}, "Setor não definido"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.Vinculo())
		})
	}
}

func TestSetorLabel(t *testing.T) {
	assert.Equal(t, "Cartão", SetorCartao.Label())
	assert.Equal(t, "Consignado", SetorConsignado.Label())
	assert.Equal(t, "Energia", SetorEnergia.Label())
	assert.Equal(t, "FGTS", SetorFGTS.Label())
	assert.Equal(t, "rh", Setor("rh").Label())
}

func TestSetorValid(t *testing.T) {
	for _, s := range Setores {
		assert.True(t, s.Valid(), "setor %s", s)
	}
	assert.False(t, Setor("").Valid())
	assert.False(t, Setor("rh").Valid())
}

func TestFiltrosVazio(t *testing.T) {
	assert.True(t, FiltrosFuncionario{}.Vazio())
	assert.False(t, FiltrosFuncionario{Nome: "ana"}.Vazio())
	assert.False(t, FiltrosFuncionario{IncluirInativos: true}.Vazio())
}
