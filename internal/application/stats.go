package application

import (
	"context"

	"github.com/rafaeltov/acessopainel/internal/domain/model"
	"github.com/rafaeltov/acessopainel/internal/domain/port/driven"
)

// Overview holds the dashboard counts. Disponivel is false when any of
// the underlying listings failed; the counts then cover whatever did
// resolve.
type Overview struct {
	Lojas        int
	Sistemas     int
	Funcionarios int
	Acessos      int
	Disponivel   bool
}

// StatsService composes the dashboard overview from the list ports. It
// holds no state of its own; every call re-fetches.
type StatsService struct {
	lojas        driven.LojaAPI
	sistemas     driven.SistemaAPI
	funcionarios driven.FuncionarioAPI
}

// NewStatsService creates a StatsService with the required ports.
func NewStatsService(lojas driven.LojaAPI, sistemas driven.SistemaAPI, funcionarios driven.FuncionarioAPI) *StatsService {
	return &StatsService{lojas: lojas, sistemas: sistemas, funcionarios: funcionarios}
}

// Overview fetches the counts of lojas, sistemas, funcionários and
// acessos. Inactive rows are included so the numbers describe the whole
// directory; acessos are counted from the lists embedded in the
// funcionário rows.
func (s *StatsService) Overview(ctx context.Context) Overview {
	ov := Overview{Disponivel: true}

	if env := s.lojas.ListLojas(ctx); env.Ok() {
		ov.Lojas = len(*env.Data)
	} else {
		ov.Disponivel = false
	}

	if env := s.sistemas.ListSistemas(ctx, true); env.Ok() {
		ov.Sistemas = len(*env.Data)
	} else {
		ov.Disponivel = false
	}

	env := s.funcionarios.ListFuncionarios(ctx, model.FiltrosFuncionario{IncluirInativos: true})
	if env.Ok() {
		ov.Funcionarios = len(*env.Data)
		for _, f := range *env.Data {
			ov.Acessos += len(f.Acessos)
		}
	} else {
		ov.Disponivel = false
	}

	return ov
}
