package driven

import (
	"context"

	"github.com/rafaeltov/acessopainel/internal/domain/model"
)

// FuncionarioAPI is the driven port for the /funcionarios resource.
type FuncionarioAPI interface {
	// ListFuncionarios lists funcionários matching the given filters.
	// Unset filter fields are omitted from the query string entirely.
	ListFuncionarios(ctx context.Context, filtros model.FiltrosFuncionario) model.Envelope[[]model.Funcionario]
	GetFuncionario(ctx context.Context, id int64) model.Envelope[model.Funcionario]
	CreateFuncionario(ctx context.Context, in model.FuncionarioInput) model.Envelope[model.Funcionario]
	UpdateFuncionario(ctx context.Context, id int64, patch model.FuncionarioPatch) model.Envelope[model.Funcionario]
	DeleteFuncionario(ctx context.Context, id int64) model.Envelope[model.Empty]
	ToggleFuncionario(ctx context.Context, id int64, ativo bool) model.Envelope[model.Funcionario]
}
