package repository

import (
	"context"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para las cuentas (tabla usuarios).
// Los Get/Find devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, empresa *string) ([]*entity.User, error)
	// Update sobrescribe nome y email.
	Update(ctx context.Context, user *entity.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
}

// ResetTokenRepository tokens de creación de contraseña de un solo uso.
type ResetTokenRepository interface {
	Create(ctx context.Context, token *entity.ResetToken) error
	// FindForUser busca el token de esa cuenta; (nil, nil) si no existe.
	FindForUser(ctx context.Context, usuarioID, token string) (*entity.ResetToken, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, usuarioID string) error
}
