package repository

import (
	"context"
	"time"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/entity"
)

// DocumentRepository define el puerto de persistencia para documentos de candidatos.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	// ListByEmail devuelve los documentos del email en orden de inserción.
	ListByEmail(ctx context.Context, email string) ([]*entity.Document, error)
	// Find busca por (nome_documento, email); (nil, nil) si no existe.
	Find(ctx context.Context, nomeDocumento, email string) (*entity.Document, error)
	MarkApproved(ctx context.Context, id int64, at time.Time) error
	MarkRejected(ctx context.Context, id int64, motivo string, at time.Time) error
	ListAll(ctx context.Context, filter entity.DocumentFilter) ([]*entity.DocumentWithCandidate, error)
}
