package ports

import (
	"context"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace rollback de todo.
type TxRunner interface {
	// RunCandidate cubre el alta de candidato + cuenta espejo.
	RunCandidate(ctx context.Context, fn func(
		candidates repository.CandidateRepository,
		users repository.UserRepository,
	) error) error

	// RunAccount cubre cuenta + tokens de creación de contraseña.
	RunAccount(ctx context.Context, fn func(
		users repository.UserRepository,
		tokens repository.ResetTokenRepository,
	) error) error
}
