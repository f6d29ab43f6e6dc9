package postgres

import (
	"context"
	"fmt"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/entity"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	db Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db Querier) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	const query = `
		INSERT INTO empresas (id, nome, cnpj, planos, email_responsavel, telefone_responsavel, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Nome, c.CNPJ, nullIfEmpty(c.Planos),
		nullIfEmpty(c.EmailResponsavel), nullIfEmpty(c.TelefoneResponsavel), c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// List devuelve todas las empresas por nombre.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	const query = `
		SELECT id, nome, cnpj, planos, email_responsavel, telefone_responsavel, created_at
		FROM empresas ORDER BY nome`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Company, 0)
	for rows.Next() {
		var c entity.Company
		var planos, email, telefone *string
		if err := rows.Scan(&c.ID, &c.Nome, &c.CNPJ, &planos, &email, &telefone, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		c.Planos, c.EmailResponsavel, c.TelefoneResponsavel = deref(planos), deref(email), deref(telefone)
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update sobrescribe todas las columnas editables.
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	const query = `
		UPDATE empresas
		   SET nome = $2, cnpj = $3, planos = $4, email_responsavel = $5, telefone_responsavel = $6
		 WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query,
		c.ID, c.Nome, c.CNPJ, nullIfEmpty(c.Planos),
		nullIfEmpty(c.EmailResponsavel), nullIfEmpty(c.TelefoneResponsavel),
	)
	if err != nil {
		return fmt.Errorf("update empresa: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFoundf("empresa com id %s não encontrada", c.ID)
	}
	return nil
}

// Delete elimina una empresa por ID.
func (r *CompanyRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM empresas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete empresa: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFoundf("empresa com id %s não encontrada", id)
	}
	return nil
}
