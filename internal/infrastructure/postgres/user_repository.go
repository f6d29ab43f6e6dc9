package postgres

import (
	"context"
	"fmt"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/entity"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre la tabla usuarios.
type UserRepo struct {
	db Querier
}

// NewUserRepository construye el adaptador de persistencia para cuentas.
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, nome, email, senha, role, empresa, created_at`

// Create persiste una cuenta. senha queda NULL mientras PasswordHash esté vacío.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	const query = `
		INSERT INTO usuarios (id, nome, email, senha, role, empresa, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		u.ID, u.Nome, u.Email, nullIfEmpty(u.PasswordHash), u.Role, nullIfEmpty(u.Empresa), u.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// FindByEmail obtiene la cuenta más antigua con ese email (el email no es único en la tabla).
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	const query = `SELECT ` + userColumns + ` FROM usuarios WHERE email = $1 ORDER BY created_at LIMIT 1`
	u, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find usuario by email: %w", err)
	}
	return u, nil
}

// List devuelve las cuentas, opcionalmente filtradas por empresa.
func (r *UserRepo) List(ctx context.Context, empresa *string) ([]*entity.User, error) {
	const query = `
		SELECT ` + userColumns + ` FROM usuarios
		 WHERE ($1::text IS NULL OR empresa = $1)
		 ORDER BY nome`
	rows, err := r.db.Query(ctx, query, empresa)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update sobrescribe nome y email.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	cmd, err := r.db.Exec(ctx, `UPDATE usuarios SET nome = $2, email = $3 WHERE id = $1`, u.ID, u.Nome, u.Email)
	if err != nil {
		return fmt.Errorf("update usuario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFoundf("usuário com id %s não encontrado", u.ID)
	}
	return nil
}

// UpdatePassword guarda el hash de la nueva contraseña.
func (r *UserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	cmd, err := r.db.Exec(ctx, `UPDATE usuarios SET senha = $2 WHERE id = $1`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update senha: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFoundf("usuário com id %s não encontrado", id)
	}
	return nil
}

// Delete elimina una cuenta por ID.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFoundf("usuário com id %s não encontrado", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*entity.User, error) {
	var (
		u              entity.User
		senha, empresa *string
	)
	if err := row.Scan(&u.ID, &u.Nome, &u.Email, &senha, &u.Role, &empresa, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.PasswordHash, u.Empresa = deref(senha), deref(empresa)
	return &u, nil
}
