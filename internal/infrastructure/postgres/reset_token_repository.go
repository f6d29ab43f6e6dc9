package postgres

import (
	"context"
	"fmt"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/entity"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/repository"
)

var _ repository.ResetTokenRepository = (*ResetTokenRepo)(nil)

// ResetTokenRepo tokens de creación de contraseña (tabla reset_tokens).
type ResetTokenRepo struct {
	db Querier
}

// NewResetTokenRepository construye el adaptador.
func NewResetTokenRepository(db Querier) *ResetTokenRepo {
	return &ResetTokenRepo{db: db}
}

// Create persiste un token.
func (r *ResetTokenRepo) Create(ctx context.Context, t *entity.ResetToken) error {
	const query = `INSERT INTO reset_tokens (id, usuario_id, token, expiracao) VALUES ($1, $2, $3, $4)`
	if _, err := r.db.Exec(ctx, query, t.ID, t.UsuarioID, t.Token, t.Expiracao); err != nil {
		return fmt.Errorf("insert reset_token: %w", err)
	}
	return nil
}

// FindForUser busca el token emitido para esa cuenta.
func (r *ResetTokenRepo) FindForUser(ctx context.Context, usuarioID, token string) (*entity.ResetToken, error) {
	const query = `SELECT id, usuario_id, token, expiracao FROM reset_tokens WHERE usuario_id = $1 AND token = $2`
	var t entity.ResetToken
	err := r.db.QueryRow(ctx, query, usuarioID, token).Scan(&t.ID, &t.UsuarioID, &t.Token, &t.Expiracao)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reset_token: %w", err)
	}
	return &t, nil
}

// Delete consume un token.
func (r *ResetTokenRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM reset_tokens WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete reset_token: %w", err)
	}
	return nil
}

// DeleteByUser borra todos los tokens de una cuenta.
func (r *ResetTokenRepo) DeleteByUser(ctx context.Context, usuarioID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM reset_tokens WHERE usuario_id = $1`, usuarioID); err != nil {
		return fmt.Errorf("delete reset_tokens: %w", err)
	}
	return nil
}
