package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/dto"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/ports"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/entity"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/repository"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/pkg/logger"
)

// DefaultRejectReason motivo cuando la reprobación no trae uno.
const DefaultRejectReason = "Não especificado"

// DocumentUseCase seguimiento de documentos: envío, listado y aprobación/reprobación.
type DocumentUseCase struct {
	repo    repository.DocumentRepository
	metrics ports.Metrics
	log     *logger.Logger
	now     func() time.Time
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(repo repository.DocumentRepository, metrics ports.Metrics, log *logger.Logger) *DocumentUseCase {
	return &DocumentUseCase{repo: repo, metrics: metrics, log: log.Component("documentos"), now: time.Now}
}

// Create registra un documento enviado en estado PENDENTE.
func (uc *DocumentUseCase) Create(ctx context.Context, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	if missing := missingFields(field{"email", in.Email}, field{"nome_documento", in.NomeDocumento}); len(missing) > 0 {
		return nil, domain.MissingField(missing...)
	}
	doc := &entity.Document{
		EmailCandidato: in.Email,
		NomeDocumento:  in.NomeDocumento,
		TipoDocumento:  optional(in.TipoDocumento),
		Status:         entity.DocumentPendente,
		ChaveArquivo:   optional(in.ChaveArquivo),
		CreatedAt:      uc.now(),
	}
	if err := uc.repo.Create(ctx, doc); err != nil {
		return nil, err
	}
	resp := toDocumentResponse(doc)
	return &resp, nil
}

// ListByEmail documentos de un candidato en orden de inserción. Sin resultados devuelve lista vacía.
func (uc *DocumentUseCase) ListByEmail(ctx context.Context, email string) (*dto.CandidateDocumentsResponse, error) {
	if strings.TrimSpace(email) == "" {
		return nil, domain.MissingField("email")
	}
	docs, err := uc.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentSummary, 0, len(docs))
	for _, d := range docs {
		items = append(items, dto.DocumentSummary{
			NomeDocumento: d.NomeDocumento,
			TipoDocumento: d.TipoDocumento,
			Status:        d.Status,
		})
	}
	return &dto.CandidateDocumentsResponse{Email: email, Documentos: items, Total: len(items)}, nil
}

// Approve pasa el documento a APROVADO sin mirar el estado actual.
func (uc *DocumentUseCase) Approve(ctx context.Context, in dto.ApproveDocumentRequest) (*dto.ApproveDocumentResponse, error) {
	doc, err := uc.find(ctx, in.NomeDocumento, in.Email)
	if err != nil {
		return nil, err
	}
	at := uc.now()
	if err := uc.repo.MarkApproved(ctx, doc.ID, at); err != nil {
		return nil, err
	}
	uc.metrics.RecordTransition(entity.DocumentAprovado)
	uc.log.Info().Int64("documento_id", doc.ID).Str("status_anterior", doc.Status).Msg("documento aprovado")

	return &dto.ApproveDocumentResponse{
		Message:        "Documento aprovado com sucesso",
		NomeDocumento:  in.NomeDocumento,
		Email:          in.Email,
		StatusAnterior: doc.Status,
		StatusAtual:    "Aprovado",
		DataAprovacao:  at,
	}, nil
}

// Reject pasa el documento a REPROVADO guardando motivo y fecha. Motivo vacío usa DefaultRejectReason.
func (uc *DocumentUseCase) Reject(ctx context.Context, in dto.RejectDocumentRequest) (*dto.RejectDocumentResponse, error) {
	doc, err := uc.find(ctx, in.NomeDocumento, in.Email)
	if err != nil {
		return nil, err
	}
	motivo := strings.TrimSpace(in.Motivo)
	if motivo == "" {
		motivo = DefaultRejectReason
	}
	at := uc.now()
	if err := uc.repo.MarkRejected(ctx, doc.ID, motivo, at); err != nil {
		return nil, err
	}
	uc.metrics.RecordTransition(entity.DocumentReprovado)
	uc.log.Info().Int64("documento_id", doc.ID).Str("status_anterior", doc.Status).Msg("documento reprovado")

	return &dto.RejectDocumentResponse{
		Message:          "Documento reprovado com sucesso",
		NomeDocumento:    in.NomeDocumento,
		Email:            in.Email,
		StatusAnterior:   doc.Status,
		StatusAtual:      "Reprovado",
		MotivoReprovacao: motivo,
		DataReprovacao:   at,
	}, nil
}

// ListAll listado general con filtros independientes de status (en mayúsculas) y empresa.
func (uc *DocumentUseCase) ListAll(ctx context.Context, status, empresa string) (*dto.AllDocumentsResponse, error) {
	filter := entity.DocumentFilter{Empresa: optional(empresa)}
	if s := optional(status); s != nil {
		upper := strings.ToUpper(*s)
		if !entity.IsValidDocumentStatus(upper) {
			return nil, domain.Invalid("status deve ser PENDENTE, APROVADO ou REPROVADO")
		}
		filter.Status = &upper
	}
	docs, err := uc.repo.ListAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentListItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, dto.DocumentListItem{
			DocumentResponse: toDocumentResponse(&d.Document),
			NomeCandidato:    d.NomeCandidato,
			Empresa:          d.Empresa,
		})
	}
	return &dto.AllDocumentsResponse{
		Documentos: items,
		Total:      len(items),
		Filtros:    dto.DocumentFilters{Status: filter.Status, Empresa: filter.Empresa},
	}, nil
}

func (uc *DocumentUseCase) find(ctx context.Context, nome, email string) (*entity.Document, error) {
	if missing := missingFields(field{"nome_documento", nome}, field{"email", email}); len(missing) > 0 {
		return nil, domain.MissingField(missing...)
	}
	doc, err := uc.repo.Find(ctx, nome, email)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.NotFoundf("Documento '%s' não encontrado para o candidato '%s'", nome, email)
	}
	return doc, nil
}

func toDocumentResponse(d *entity.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:               d.ID,
		EmailCandidato:   d.EmailCandidato,
		NomeDocumento:    d.NomeDocumento,
		TipoDocumento:    d.TipoDocumento,
		Status:           d.Status,
		MotivoReprovacao: d.MotivoReprovacao,
		DataAprovacao:    d.DataAprovacao,
		DataReprovacao:   d.DataReprovacao,
		ChaveArquivo:     d.ChaveArquivo,
		CreatedAt:        d.CreatedAt,
	}
}
