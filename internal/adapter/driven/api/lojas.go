package api

import (
	"context"

	"github.com/rafaeltov/acessopainel/internal/domain/model"
)

const lojasPath = "/lojas"

// ListLojas returns every loja.
func (c *Client) ListLojas(ctx context.Context) model.Envelope[[]model.Loja] {
	return get[[]model.Loja](ctx, c, lojasPath, nil)
}

// GetLoja returns one loja by id.
func (c *Client) GetLoja(ctx context.Context, id int64) model.Envelope[model.Loja] {
	return get[model.Loja](ctx, c, lojasPath, idQuery(id))
}

// CreateLoja creates a loja.
func (c *Client) CreateLoja(ctx context.Context, in model.LojaInput) model.Envelope[model.Loja] {
	return post[model.Loja](ctx, c, lojasPath, in)
}

// UpdateLoja applies a partial update; only non-nil patch fields are sent.
func (c *Client) UpdateLoja(ctx context.Context, id int64, patch model.LojaPatch) model.Envelope[model.Loja] {
	return put[model.Loja](ctx, c, lojasPath, idQuery(id), patch)
}

// DeleteLoja removes a loja.
func (c *Client) DeleteLoja(ctx context.Context, id int64) model.Envelope[model.Empty] {
	return del[model.Empty](ctx, c, lojasPath, idQuery(id))
}

// ToggleLoja flips the ativo flag, sending only that field.
func (c *Client) ToggleLoja(ctx context.Context, id int64, ativo bool) model.Envelope[model.Loja] {
	return c.UpdateLoja(ctx, id, model.LojaPatch{Ativo: &ativo})
}
