package driven

import (
	"context"

	"github.com/rafaeltov/acessopainel/internal/domain/model"
)

// SistemaAPI is the driven port for the /sistemas resource.
type SistemaAPI interface {
	// ListSistemas lists sistemas; incluirInativos adds inactive rows and
	// is only sent on the wire when true.
	ListSistemas(ctx context.Context, incluirInativos bool) model.Envelope[[]model.Sistema]
	GetSistema(ctx context.Context, id int64) model.Envelope[model.Sistema]
	CreateSistema(ctx context.Context, in model.SistemaInput) model.Envelope[model.Sistema]
	UpdateSistema(ctx context.Context, id int64, patch model.SistemaPatch) model.Envelope[model.Sistema]
	DeleteSistema(ctx context.Context, id int64) model.Envelope[model.Empty]
	ToggleSistema(ctx context.Context, id int64, ativo bool) model.Envelope[model.Sistema]
}
