package dto

import "time"

// CreateDocumentRequest registra un documento enviado (queda PENDENTE).
type CreateDocumentRequest struct {
	Email         string `json:"email"`
	NomeDocumento string `json:"nome_documento"`
	TipoDocumento string `json:"tipo_documento"`
	ChaveArquivo  string `json:"chave_arquivo"`
}

// DocumentResponse documento completo.
type DocumentResponse struct {
	ID               int64      `json:"id"`
	EmailCandidato   string     `json:"email_candidato"`
	NomeDocumento    string     `json:"nome_documento"`
	TipoDocumento    *string    `json:"tipo_documento"`
	Status           string     `json:"status"`
	MotivoReprovacao *string    `json:"motivo_reprovacao"`
	DataAprovacao    *time.Time `json:"data_aprovacao"`
	DataReprovacao   *time.Time `json:"data_reprovacao"`
	ChaveArquivo     *string    `json:"chave_arquivo"`
	CreatedAt        time.Time  `json:"created_at"`
}

// DocumentSummary item del listado por candidato.
type DocumentSummary struct {
	NomeDocumento string  `json:"nome_documento"`
	TipoDocumento *string `json:"tipo_documento"`
	Status        string  `json:"status"`
}

// CandidateDocumentsResponse documentos de un email, en orden de inserción.
type CandidateDocumentsResponse struct {
	Email      string            `json:"email"`
	Documentos []DocumentSummary `json:"documentos"`
	Total      int               `json:"total"`
}

// ApproveDocumentRequest identifica el documento por (nome_documento, email).
type ApproveDocumentRequest struct {
	NomeDocumento string `json:"nome_documento"`
	Email         string `json:"email"`
}

// RejectDocumentRequest igual que aprobar más el motivo opcional.
type RejectDocumentRequest struct {
	NomeDocumento string `json:"nome_documento"`
	Email         string `json:"email"`
	Motivo        string `json:"motivo"`
}

// ApproveDocumentResponse resultado de la aprobación.
type ApproveDocumentResponse struct {
	Message        string    `json:"message"`
	NomeDocumento  string    `json:"nome_documento"`
	Email          string    `json:"email"`
	StatusAnterior string    `json:"status_anterior"`
	StatusAtual    string    `json:"status_atual"`
	DataAprovacao  time.Time `json:"data_aprovacao"`
}

// RejectDocumentResponse resultado de la reprobación.
type RejectDocumentResponse struct {
	Message          string    `json:"message"`
	NomeDocumento    string    `json:"nome_documento"`
	Email            string    `json:"email"`
	StatusAnterior   string    `json:"status_anterior"`
	StatusAtual      string    `json:"status_atual"`
	MotivoReprovacao string    `json:"motivo_reprovacao"`
	DataReprovacao   time.Time `json:"data_reprovacao"`
}

// DocumentListItem fila del listado general con datos del candidato (pueden ser null).
type DocumentListItem struct {
	DocumentResponse
	NomeCandidato *string `json:"nome_candidato"`
	Empresa       *string `json:"empresa"`
}

// DocumentFilters filtros aplicados; null cuando no se pidió el filtro.
type DocumentFilters struct {
	Status  *string `json:"status"`
	Empresa *string `json:"empresa"`
}

// AllDocumentsResponse listado general.
type AllDocumentsResponse struct {
	Documentos []DocumentListItem `json:"documentos"`
	Total      int                `json:"total"`
	Filtros    DocumentFilters    `json:"filtros"`
}
