package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/rafaeltov/acessopainel/internal/domain/model"
)

const acessosPath = "/acessos"

// ListAcessosByFuncionario returns the acessos owned by one funcionário.
func (c *Client) ListAcessosByFuncionario(ctx context.Context, funcionarioID int64) model.Envelope[[]model.Acesso] {
	query := url.Values{"funcionario_id": []string{strconv.FormatInt(funcionarioID, 10)}}
	return get[[]model.Acesso](ctx, c, acessosPath, query)
}

// GetAcesso returns one acesso by id.
func (c *Client) GetAcesso(ctx context.Context, id int64) model.Envelope[model.Acesso] {
	return get[model.Acesso](ctx, c, acessosPath, idQuery(id))
}

// CreateAcesso creates an acesso for a funcionário/sistema pair.
func (c *Client) CreateAcesso(ctx context.Context, in model.AcessoInput) model.Envelope[model.Acesso] {
	return post[model.Acesso](ctx, c, acessosPath, in)
}

// UpdateAcesso applies a partial update; only non-nil patch fields are sent.
func (c *Client) UpdateAcesso(ctx context.Context, id int64, patch model.AcessoPatch) model.Envelope[model.Acesso] {
	return put[model.Acesso](ctx, c, acessosPath, idQuery(id), patch)
}

// DeleteAcesso removes an acesso.
func (c *Client) DeleteAcesso(ctx context.Context, id int64) model.Envelope[model.Empty] {
	return del[model.Empty](ctx, c, acessosPath, idQuery(id))
}
