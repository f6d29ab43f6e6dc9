package entity

import "time"

// Estados de un documento. Las constantes son sensibles a mayúsculas.
const (
	DocumentPendente  = "PENDENTE"
	DocumentAprovado  = "APROVADO"
	DocumentReprovado = "REPROVADO"
)

// Document representa un documento enviado por un candidato (tabla documentos_candidatos).
// Se asocia al candidato por email, no por id.
type Document struct {
	ID               int64
	EmailCandidato   string
	NomeDocumento    string
	TipoDocumento    *string
	Status           string
	MotivoReprovacao *string
	DataAprovacao    *time.Time
	DataReprovacao   *time.Time
	ChaveArquivo     *string
	CreatedAt        time.Time
}

// DocumentWithCandidate fila del listado general: documento + datos del candidato (LEFT JOIN).
type DocumentWithCandidate struct {
	Document
	NomeCandidato *string
	Empresa       *string
}

// DocumentFilter filtros opcionales del listado general; nil = sin filtro.
type DocumentFilter struct {
	Status  *string
	Empresa *string
}

// IsValidDocumentStatus informa si s es uno de los tres estados admitidos.
func IsValidDocumentStatus(s string) bool {
	switch s {
	case DocumentPendente, DocumentAprovado, DocumentReprovado:
		return true
	}
	return false
}
