package api

import (
	"context"
	"net/url"

	"github.com/rafaeltov/acessopainel/internal/domain/model"
)

const sistemasPath = "/sistemas"

// ListSistemas returns sistemas, optionally including inactive ones. The
// incluir_inativos parameter is only sent when true.
func (c *Client) ListSistemas(ctx context.Context, incluirInativos bool) model.Envelope[[]model.Sistema] {
	var query url.Values
	if incluirInativos {
		query = url.Values{"incluir_inativos": []string{"1"}}
	}
	return get[[]model.Sistema](ctx, c, sistemasPath, query)
}

// GetSistema returns one sistema by id.
func (c *Client) GetSistema(ctx context.Context, id int64) model.Envelope[model.Sistema] {
	return get[model.Sistema](ctx, c, sistemasPath, idQuery(id))
}

// CreateSistema creates a sistema.
func (c *Client) CreateSistema(ctx context.Context, in model.SistemaInput) model.Envelope[model.Sistema] {
	return post[model.Sistema](ctx, c, sistemasPath, in)
}

// UpdateSistema applies a partial update; only non-nil patch fields are sent.
func (c *Client) UpdateSistema(ctx context.Context, id int64, patch model.SistemaPatch) model.Envelope[model.Sistema] {
	return put[model.Sistema](ctx, c, sistemasPath, idQuery(id), patch)
}

// DeleteSistema removes a sistema.
func (c *Client) DeleteSistema(ctx context.Context, id int64) model.Envelope[model.Empty] {
	return del[model.Empty](ctx, c, sistemasPath, idQuery(id))
}

// ToggleSistema flips the ativo flag, sending only that field.
func (c *Client) ToggleSistema(ctx context.Context, id int64, ativo bool) model.Envelope[model.Sistema] {
	return c.UpdateSistema(ctx, id, model.SistemaPatch{Ativo: &ativo})
}
