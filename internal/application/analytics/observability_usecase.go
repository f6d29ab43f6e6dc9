// Package analytics contiene los agregados de solo lectura sobre documentos y candidatos.
package analytics

import (
	"context"
	"strings"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/dto"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/onboarding"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/repository"
)

// ObservabilityUseCase tasa de aprobación, contrataciones y documentos por tipo.
//
// Fuente de datos: ObservabilityRepository. Cada métrica es una consulta independiente
// y se puede acotar a una empresa.
type ObservabilityUseCase struct {
	repo repository.ObservabilityRepository
}

// NewObservabilityUseCase construye el caso de uso.
func NewObservabilityUseCase(repo repository.ObservabilityRepository) *ObservabilityUseCase {
	return &ObservabilityUseCase{repo: repo}
}

// ApprovalRate porcentaje de documentos APROVADO con un decimal; sin documentos es 0.
func (uc *ObservabilityUseCase) ApprovalRate(ctx context.Context, empresa string) (*dto.ApprovalRateResponse, error) {
	scope := companyScope(empresa)
	counts, err := uc.repo.ApprovalCounts(ctx, scope)
	if err != nil {
		return nil, err
	}
	return &dto.ApprovalRateResponse{
		TaxaAprovacao:       onboarding.ApprovalRate(counts.Aprovados, counts.Total).InexactFloat64(),
		DocumentosAprovados: counts.Aprovados,
		TotalDocumentos:     counts.Total,
		Empresa:             scope,
	}, nil
}

// Hires candidatos con situacao "Processo Finalizado".
func (uc *ObservabilityUseCase) Hires(ctx context.Context, empresa string) (*dto.HiresResponse, error) {
	scope := companyScope(empresa)
	n, err := uc.repo.CountHires(ctx, scope)
	if err != nil {
		return nil, err
	}
	return &dto.HiresResponse{Contratacoes: n, Empresa: scope}, nil
}

// DocumentsByType conteos por tipo normalizado (minúsculas, "desconhecido" si falta).
func (uc *ObservabilityUseCase) DocumentsByType(ctx context.Context, empresa string) (dto.DocumentsByTypeResponse, error) {
	rows, err := uc.repo.CountsByType(ctx, companyScope(empresa))
	if err != nil {
		return nil, err
	}
	out := dto.DocumentsByTypeResponse{}
	for k, v := range onboarding.GroupByType(rows) {
		out[k] = dto.TypeBreakdownDTO{
			Total:     v.Total,
			Aprovado:  v.Aprovado,
			Reprovado: v.Reprovado,
			Pendente:  v.Pendente,
		}
	}
	return out, nil
}

func companyScope(empresa string) *string {
	empresa = strings.TrimSpace(empresa)
	if empresa == "" {
		return nil
	}
	return &empresa
}
