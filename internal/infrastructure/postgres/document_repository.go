package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/entity"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación de DocumentRepository sobre documentos_candidatos.
type DocumentRepo struct {
	db Querier
}

// NewDocumentRepository construye el adaptador de persistencia para documentos.
func NewDocumentRepository(db Querier) *DocumentRepo {
	return &DocumentRepo{db: db}
}

const documentColumns = `dc.id, dc.email_candidato, dc.nome_documento, dc.tipo_documento, dc.status,
	dc.motivo_reprovacao, dc.data_aprovacao, dc.data_reprovacao, dc.chave_arquivo, dc.created_at`

// Create persiste un documento nuevo y completa su ID.
func (r *DocumentRepo) Create(ctx context.Context, d *entity.Document) error {
	const query = `
		INSERT INTO documentos_candidatos (email_candidato, nome_documento, tipo_documento, status, chave_arquivo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.db.QueryRow(ctx, query,
		d.EmailCandidato, d.NomeDocumento, d.TipoDocumento, d.Status, d.ChaveArquivo, d.CreatedAt,
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("insert documento: %w", err)
	}
	return nil
}

// ListByEmail devuelve los documentos del candidato en orden de inserción.
func (r *DocumentRepo) ListByEmail(ctx context.Context, email string) ([]*entity.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documentos_candidatos dc WHERE dc.email_candidato = $1 ORDER BY dc.id`
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("list documentos: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Document, 0)
	for rows.Next() {
		var d entity.Document
		if err := rows.Scan(documentDest(&d)...); err != nil {
			return nil, fmt.Errorf("scan documento: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Find busca un documento por nombre y email del candidato.
// Si hubiera duplicados devuelve el primero insertado.
func (r *DocumentRepo) Find(ctx context.Context, nomeDocumento, email string) (*entity.Document, error) {
	query := `SELECT ` + documentColumns + `
		FROM documentos_candidatos dc
		WHERE dc.nome_documento = $1 AND dc.email_candidato = $2
		ORDER BY dc.id LIMIT 1`
	var d entity.Document
	if err := r.db.QueryRow(ctx, query, nomeDocumento, email).Scan(documentDest(&d)...); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get documento: %w", err)
	}
	return &d, nil
}

// MarkApproved pasa el documento a APROVADO sin mirar el estado actual.
func (r *DocumentRepo) MarkApproved(ctx context.Context, id int64, at time.Time) error {
	const query = `UPDATE documentos_candidatos SET status = $2, data_aprovacao = $3 WHERE id = $1`
	return r.transition(ctx, "aprovar", query, id, entity.DocumentAprovado, at)
}

// MarkRejected pasa el documento a REPROVADO guardando motivo y fecha.
func (r *DocumentRepo) MarkRejected(ctx context.Context, id int64, motivo string, at time.Time) error {
	const query = `UPDATE documentos_candidatos SET status = $2, motivo_reprovacao = $3, data_reprovacao = $4 WHERE id = $1`
	return r.transition(ctx, "reprovar", query, id, entity.DocumentReprovado, motivo, at)
}

func (r *DocumentRepo) transition(ctx context.Context, op, query string, args ...any) error {
	cmd, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s documento: %w", op, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFoundf("documento %v não encontrado", args[0])
	}
	return nil
}

// ListAll lista todos los documentos con el nombre y la empresa del candidato,
// ordenados por nombre del candidato y luego por nombre del documento.
func (r *DocumentRepo) ListAll(ctx context.Context, f entity.DocumentFilter) ([]*entity.DocumentWithCandidate, error) {
	query := `SELECT ` + documentColumns + `, c.nome, c.empresa
		FROM documentos_candidatos dc
		LEFT JOIN candidatos c ON c.email = dc.email_candidato
		WHERE ($1::text IS NULL OR dc.status = $1)
		  AND ($2::text IS NULL OR c.empresa = $2)
		ORDER BY c.nome, dc.nome_documento`
	rows, err := r.db.Query(ctx, query, f.Status, f.Empresa)
	if err != nil {
		return nil, fmt.Errorf("list todos documentos: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.DocumentWithCandidate, 0)
	for rows.Next() {
		var d entity.DocumentWithCandidate
		dest := append(documentDest(&d.Document), &d.NomeCandidato, &d.Empresa)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan documento: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func documentDest(d *entity.Document) []any {
	return []any{
		&d.ID, &d.EmailCandidato, &d.NomeDocumento, &d.TipoDocumento, &d.Status,
		&d.MotivoReprovacao, &d.DataAprovacao, &d.DataReprovacao, &d.ChaveArquivo, &d.CreatedAt,
	}
}
