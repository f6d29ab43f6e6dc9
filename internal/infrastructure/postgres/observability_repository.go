package postgres

import (
	"context"
	"fmt"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/entity"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/repository"
)

var _ repository.ObservabilityRepository = (*ObservabilityRepo)(nil)

// ObservabilityRepo consultas agregadas de solo lectura sobre documentos y candidatos.
type ObservabilityRepo struct {
	db Querier
}

// NewObservabilityRepository construye el adaptador de observabilidad.
func NewObservabilityRepository(db Querier) *ObservabilityRepo {
	return &ObservabilityRepo{db: db}
}

// documentsScope arma el FROM de documentos. Con empresa se hace INNER JOIN con candidatos por email,
// así que documentos sin candidato solo cuentan en el total global.
func documentsScope(empresa *string) (string, []any) {
	if empresa == nil {
		return ` FROM documentos_candidatos dc`, nil
	}
	return ` FROM documentos_candidatos dc
		JOIN candidatos c ON dc.email_candidato = c.email
		WHERE c.empresa = $1`, []any{*empresa}
}

// ApprovalCounts devuelve aprobados y total de documentos.
func (r *ObservabilityRepo) ApprovalCounts(ctx context.Context, empresa *string) (entity.ApprovalCounts, error) {
	from, args := documentsScope(empresa)
	query := `SELECT COUNT(CASE WHEN dc.status = 'APROVADO' THEN 1 END), COUNT(*)` + from

	var out entity.ApprovalCounts
	if err := r.db.QueryRow(ctx, query, args...).Scan(&out.Aprovados, &out.Total); err != nil {
		return entity.ApprovalCounts{}, fmt.Errorf("observability.ApprovalCounts: %w", err)
	}
	return out, nil
}

// CountHires cuenta candidatos con situacao exactamente 'Processo Finalizado'.
func (r *ObservabilityRepo) CountHires(ctx context.Context, empresa *string) (int64, error) {
	const query = `
		SELECT COUNT(*) FROM candidatos
		 WHERE situacao = $1
		   AND ($2::text IS NULL OR empresa = $2)`
	var n int64
	if err := r.db.QueryRow(ctx, query, entity.SituacaoFinalizado, empresa).Scan(&n); err != nil {
		return 0, fmt.Errorf("observability.CountHires: %w", err)
	}
	return n, nil
}

// CountsByType agrupa por tipo_documento crudo; la normalización de la clave es del dominio.
func (r *ObservabilityRepo) CountsByType(ctx context.Context, empresa *string) ([]entity.TypeCounts, error) {
	from, args := documentsScope(empresa)
	query := `
		SELECT dc.tipo_documento,
		       COUNT(*),
		       COUNT(CASE WHEN dc.status = 'APROVADO' THEN 1 END),
		       COUNT(CASE WHEN dc.status = 'REPROVADO' THEN 1 END),
		       COUNT(CASE WHEN dc.status = 'PENDENTE' THEN 1 END)` + from + `
		GROUP BY dc.tipo_documento
		ORDER BY dc.tipo_documento NULLS LAST`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("observability.CountsByType: %w", err)
	}
	defer rows.Close()

	var out []entity.TypeCounts
	for rows.Next() {
		var tc entity.TypeCounts
		if err := rows.Scan(&tc.Tipo, &tc.Total, &tc.Aprovado, &tc.Reprovado, &tc.Pendente); err != nil {
			return nil, fmt.Errorf("observability.CountsByType scan: %w", err)
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}
