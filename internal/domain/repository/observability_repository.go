package repository

import (
	"context"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/entity"
)

// ObservabilityRepository consultas agregadas de solo lectura.
// empresa nil = sin filtro; con filtro se hace JOIN con candidatos por email.
type ObservabilityRepository interface {
	ApprovalCounts(ctx context.Context, empresa *string) (entity.ApprovalCounts, error)
	CountHires(ctx context.Context, empresa *string) (int64, error)
	CountsByType(ctx context.Context, empresa *string) ([]entity.TypeCounts, error)
}
