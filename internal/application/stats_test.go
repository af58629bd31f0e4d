package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rafaeltov/acessopainel/internal/application"
	"github.com/rafaeltov/acessopainel/internal/domain/model"
)

// mockLojaAPI implements driven.LojaAPI; only the list call matters here.
type mockLojaAPI struct {
	listEnv model.Envelope[[]model.Loja]
}

func (m *mockLojaAPI) ListLojas(_ context.Context) model.Envelope[[]model.Loja] { return m.listEnv }
func (m *mockLojaAPI) GetLoja(_ context.Context, _ int64) model.Envelope[model.Loja] {
	return model.Fail[model.Loja]("não implementado")
}
func (m *mockLojaAPI) CreateLoja(_ context.Context, _ model.LojaInput) model.Envelope[model.Loja] {
	return model.Fail[model.Loja]("não implementado")
}
func (m *mockLojaAPI) UpdateLoja(_ context.Context, _ int64, _ model.LojaPatch) model.Envelope[model.Loja] {
	return model.Fail[model.Loja]("não implementado")
}
func (m *mockLojaAPI) DeleteLoja(_ context.Context, _ int64) model.Envelope[model.Empty] {
	return model.Fail[model.Empty]("não implementado")
}
func (m *mockLojaAPI) ToggleLoja(_ context.Context, _ int64, _ bool) model.Envelope[model.Loja] {
	return model.Fail[model.Loja]("não implementado")
}

type mockSistemaAPI struct {
	listEnv         model.Envelope[[]model.Sistema]
	incluirInativos bool
}

func (m *mockSistemaAPI) ListSistemas(_ context.Context, incluirInativos bool) model.Envelope[[]model.Sistema] {
	m.incluirInativos = incluirInativos
	return m.listEnv
}
func (m *mockSistemaAPI) GetSistema(_ context.Context, _ int64) model.Envelope[model.Sistema] {
	return model.Fail[model.Sistema]("não implementado")
}
func (m *mockSistemaAPI) CreateSistema(_ context.Context, _ model.SistemaInput) model.Envelope[model.Sistema] {
	return model.Fail[model.Sistema]("não implementado")
}
func (m *mockSistemaAPI) UpdateSistema(_ context.Context, _ int64, _ model.SistemaPatch) model.Envelope[model.Sistema] {
	return model.Fail[model.Sistema]("não implementado")
}
func (m *mockSistemaAPI) DeleteSistema(_ context.Context, _ int64) model.Envelope[model.Empty] {
	return model.Fail[model.Empty]("não implementado")
}
func (m *mockSistemaAPI) ToggleSistema(_ context.Context, _ int64, _ bool) model.Envelope[model.Sistema] {
	return model.Fail[model.Sistema]("não implementado")
}

type mockFuncionarioAPI struct {
	listEnv model.Envelope[[]model.Funcionario]
	filtros model.FiltrosFuncionario
}

func (m *mockFuncionarioAPI) ListFuncionarios(_ context.Context, filtros model.FiltrosFuncionario) model.Envelope[[]model.Funcionario] {
	m.filtros = filtros
	return m.listEnv
}
func (m *mockFuncionarioAPI) GetFuncionario(_ context.Context, _ int64) model.Envelope[model.Funcionario] {
	return model.Fail[model.Funcionario]("não implementado")
}
func (m *mockFuncionarioAPI) CreateFuncionario(_ context.Context, _ model.FuncionarioInput) model.Envelope[model.Funcionario] {
	return model.Fail[model.Funcionario]("não implementado")
}
func (m *mockFuncionarioAPI) UpdateFuncionario(_ context.Context, _ int64, _ model.FuncionarioPatch) model.Envelope[model.Funcionario] {
	return model.Fail[model.Funcionario]("não implementado")
}
func (m *mockFuncionarioAPI) DeleteFuncionario(_ context.Context, _ int64) model.Envelope[model.Empty] {
	return model.Fail[model.Empty]("não implementado")
}
func (m *mockFuncionarioAPI) ToggleFuncionario(_ context.Context, _ int64, _ bool) model.Envelope[model.Funcionario] {
	return model.Fail[model.Funcionario]("não implementado")
}

func okList[T any](items []T) model.Envelope[[]T] {
	return model.Envelope[[]T]{Success: true, Data: &items}
}

func TestOverview_Counts(t *testing.T) {
	lojas := &mockLojaAPI{listEnv: okList([]model.Loja{{ID: 1}, {ID: 2}})}
	sistemas := &mockSistemaAPI{listEnv: okList([]model.Sistema{{ID: 1}, {ID: 2}, {ID: 3}})}
	funcionarios := &mockFuncionarioAPI{listEnv: okList([]model.Funcionario{
		{ID: 1, Acessos: []model.Acesso{{ID: 1}, {ID: 2}}},
		{ID: 2},
		{ID: 3, Acessos: []model.Acesso{{ID: 3}}},
	})}

	svc := application.NewStatsService(lojas, sistemas, funcionarios)
	ov := svc.Overview(context.Background())

	assert.True(t, ov.Disponivel)
	assert.Equal(t, 2, ov.Lojas)
	assert.Equal(t, 3, ov.Sistemas)
	assert.Equal(t, 3, ov.Funcionarios)
	assert.Equal(t, 3, ov.Acessos)
}

// The overview describes the whole directory, so inactive rows must be
// included in both listings that support the switch.
func TestOverview_IncludesInactive(t *testing.T) {
	lojas := &mockLojaAPI{listEnv: okList([]model.Loja{})}
	sistemas := &mockSistemaAPI{listEnv: okList([]model.Sistema{})}
	funcionarios := &mockFuncionarioAPI{listEnv: okList([]model.Funcionario{})}

	application.NewStatsService(lojas, sistemas, funcionarios).Overview(context.Background())

	assert.True(t, sistemas.incluirInativos)
	assert.True(t, funcionarios.filtros.IncluirInativos)
}

func TestOverview_PartialFailure(t *testing.T) {
	lojas := &mockLojaAPI{listEnv: model.Fail[[]model.Loja]("Falha de comunicação com a API")}
	sistemas := &mockSistemaAPI{listEnv: okList([]model.Sistema{{ID: 1}})}
	funcionarios := &mockFuncionarioAPI{listEnv: okList([]model.Funcionario{{ID: 1}})}

	ov := application.NewStatsService(lojas, sistemas, funcionarios).Overview(context.Background())

	assert.False(t, ov.Disponivel)
	assert.Equal(t, 0, ov.Lojas)
	assert.Equal(t, 1, ov.Sistemas, "counts that did resolve are kept")
	assert.Equal(t, 1, ov.Funcionarios)
}
