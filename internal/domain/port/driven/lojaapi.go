package driven

import (
	"context"

	"github.com/rafaeltov/acessopainel/internal/domain/model"
)

// LojaAPI is the driven port for the /lojas resource.
type LojaAPI interface {
	ListLojas(ctx context.Context) model.Envelope[[]model.Loja]
	GetLoja(ctx context.Context, id int64) model.Envelope[model.Loja]
	CreateLoja(ctx context.Context, in model.LojaInput) model.Envelope[model.Loja]
	UpdateLoja(ctx context.Context, id int64, patch model.LojaPatch) model.Envelope[model.Loja]
	DeleteLoja(ctx context.Context, id int64) model.Envelope[model.Empty]

	// ToggleLoja flips the active flag; sugar over UpdateLoja that sends
	// only the ativo field.
	ToggleLoja(ctx context.Context, id int64, ativo bool) model.Envelope[model.Loja]
}
