package postgres

import (
	"context"
	"fmt"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/entity"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/repository"
)

var _ repository.CandidateRepository = (*CandidateRepo)(nil)

// CandidateRepo implementación de CandidateRepository sobre la tabla candidatos.
type CandidateRepo struct {
	db Querier
}

// NewCandidateRepository construye el adaptador de persistencia para candidatos.
func NewCandidateRepository(db Querier) *CandidateRepo {
	return &CandidateRepo{db: db}
}

// Create persiste un candidato con la credencial ya hasheada.
func (r *CandidateRepo) Create(ctx context.Context, c *entity.Candidate) error {
	const query = `
		INSERT INTO candidatos (id, nome, email, senha, cpf, telefone, estado, vaga, genero, empresa, situacao, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Nome, c.Email, c.PasswordHash, c.CPF,
		nullIfEmpty(c.Telefone), nullIfEmpty(c.Estado), nullIfEmpty(c.Vaga), nullIfEmpty(c.Genero),
		c.Empresa, c.Situacao, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert candidato: %w", err)
	}
	return nil
}

// List devuelve los candidatos, opcionalmente de una empresa. Nunca expone senha ni cpf.
func (r *CandidateRepo) List(ctx context.Context, empresa *string) ([]*entity.Candidate, error) {
	const query = `
		SELECT id, nome, email, telefone, estado, vaga, genero, empresa, situacao, created_at
		  FROM candidatos
		 WHERE ($1::text IS NULL OR empresa = $1)
		 ORDER BY nome`
	rows, err := r.db.Query(ctx, query, empresa)
	if err != nil {
		return nil, fmt.Errorf("list candidatos: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Candidate, 0)
	for rows.Next() {
		var c entity.Candidate
		var telefone, estado, vaga, genero, emp, situacao *string
		if err := rows.Scan(&c.ID, &c.Nome, &c.Email, &telefone, &estado, &vaga, &genero, &emp, &situacao, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan candidato: %w", err)
		}
		c.Telefone, c.Estado, c.Vaga, c.Genero = deref(telefone), deref(estado), deref(vaga), deref(genero)
		c.Empresa, c.Situacao = deref(emp), deref(situacao)
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update sobrescribe nome, email y situacao en una sola sentencia.
func (r *CandidateRepo) Update(ctx context.Context, c *entity.Candidate) error {
	const query = `UPDATE candidatos SET nome = $2, email = $3, situacao = $4 WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, c.ID, c.Nome, c.Email, c.Situacao)
	if err != nil {
		return fmt.Errorf("update candidato: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFoundf("candidato com id %s não encontrado", c.ID)
	}
	return nil
}

// Delete elimina el candidato. La cuenta en usuarios permanece.
func (r *CandidateRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM candidatos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete candidato: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFoundf("candidato com id %s não encontrado", id)
	}
	return nil
}
