package driven

import (
	"context"

	"github.com/rafaeltov/acessopainel/internal/domain/model"
)

// AcessoAPI is the driven port for the /acessos resource. Listing is
// always scoped to one funcionário.
type AcessoAPI interface {
	ListAcessosByFuncionario(ctx context.Context, funcionarioID int64) model.Envelope[[]model.Acesso]
	GetAcesso(ctx context.Context, id int64) model.Envelope[model.Acesso]
	CreateAcesso(ctx context.Context, in model.AcessoInput) model.Envelope[model.Acesso]
	UpdateAcesso(ctx context.Context, id int64, patch model.AcessoPatch) model.Envelope[model.Acesso]
	DeleteAcesso(ctx context.Context, id int64) model.Envelope[model.Empty]
}
