package repository

import (
	"context"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/entity"
)

// CandidateRepository define el puerto de persistencia para candidatos.
type CandidateRepository interface {
	Create(ctx context.Context, candidate *entity.Candidate) error
	List(ctx context.Context, empresa *string) ([]*entity.Candidate, error)
	// Update sobrescribe nome, email y situacao sin semántica de parche.
	Update(ctx context.Context, candidate *entity.Candidate) error
	// Delete borra solo la fila del candidato; la cuenta asociada no se toca.
	Delete(ctx context.Context, id string) error
}
