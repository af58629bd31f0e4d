package api

import (
	"context"
	"net/url"

	"github.com/google/go-querystring/query"

	"github.com/rafaeltov/acessopainel/internal/domain/model"
)

const funcionariosPath = "/funcionarios"

// filterQuery serializes the filter set for the funcionário listing.
// Unset fields are omitted entirely; incluir_inativos encodes as 1.
func filterQuery(filtros model.FiltrosFuncionario) url.Values {
	values, err := query.Values(filtros)
	if err != nil {
		// Cannot happen for a flat struct of scalars; listing unfiltered
		// beats failing the whole view.
		return nil
	}
	return values
}

// ListFuncionarios returns funcionários matching the given filters, each
// with its loja and acessos embedded by the API.
func (c *Client) ListFuncionarios(ctx context.Context, filtros model.FiltrosFuncionario) model.Envelope[[]model.Funcionario] {
	return get[[]model.Funcionario](ctx, c, funcionariosPath, filterQuery(filtros))
}

// GetFuncionario returns one funcionário by id.
func (c *Client) GetFuncionario(ctx context.Context, id int64) model.Envelope[model.Funcionario] {
	return get[model.Funcionario](ctx, c, funcionariosPath, idQuery(id))
}

// CreateFuncionario creates a funcionário. Callers are expected to have
// normalized and validated the input's tipo/vínculo pairing.
func (c *Client) CreateFuncionario(ctx context.Context, in model.FuncionarioInput) model.Envelope[model.Funcionario] {
	return post[model.Funcionario](ctx, c, funcionariosPath, in)
}

// UpdateFuncionario applies a partial update; only non-nil patch fields
// are sent.
func (c *Client) UpdateFuncionario(ctx context.Context, id int64, patch model.FuncionarioPatch) model.Envelope[model.Funcionario] {
	return put[model.Funcionario](ctx, c, funcionariosPath, idQuery(id), patch)
}

// DeleteFuncionario removes a funcionário.
func (c *Client) DeleteFuncionario(ctx context.Context, id int64) model.Envelope[model.Empty] {
	return del[model.Empty](ctx, c, funcionariosPath, idQuery(id))
}

// ToggleFuncionario flips the ativo flag, sending only that field.
func (c *Client) ToggleFuncionario(ctx context.Context, id int64, ativo bool) model.Envelope[model.Funcionario] {
	return c.UpdateFuncionario(ctx, id, model.FuncionarioPatch{Ativo: &ativo})
}
