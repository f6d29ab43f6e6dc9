package dto

// ApprovalRateResponse GET /observability/taxa-aprovacao.
type ApprovalRateResponse struct {
	TaxaAprovacao       float64 `json:"taxa_aprovacao"` // porcentaje con un decimal
	DocumentosAprovados int64   `json:"documentos_aprovados"`
	TotalDocumentos     int64   `json:"total_documentos"`
	Empresa             *string `json:"empresa"`
}

// HiresResponse GET /observability/contratacoes.
type HiresResponse struct {
	Contratacoes int64   `json:"contratacoes"`
	Empresa      *string `json:"empresa"`
}

// TypeBreakdownDTO conteos de un tipo de documento.
type TypeBreakdownDTO struct {
	Total     int64 `json:"total"`
	Aprovado  int64 `json:"aprovado"`
	Reprovado int64 `json:"reprovado"`
	Pendente  int64 `json:"pendente"`
}

// DocumentsByTypeResponse tipo normalizado -> conteos.
type DocumentsByTypeResponse map[string]TypeBreakdownDTO
