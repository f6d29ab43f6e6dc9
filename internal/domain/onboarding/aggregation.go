package onboarding

import (
	"strings"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UnknownDocumentType etiqueta para documentos sin tipo.
const UnknownDocumentType = "desconhecido"

var hundred = decimal.NewFromInt(100)

// ApprovalRate = aprovados / max(total, 1) * 100, redondeado a un decimal.
// Sin documentos el denominador se fuerza a 1 y el resultado es 0.0.
func ApprovalRate(aprovados, total int64) decimal.Decimal {
	if total <= 0 {
		total = 1
	}
	return decimal.NewFromInt(aprovados).
		Mul(hundred).
		DivRound(decimal.NewFromInt(total), 8).
		Round(1)
}

// DocumentTypeKey normaliza el tipo para agrupar: minúsculas; nil o vacío -> "desconhecido".
func DocumentTypeKey(tipo *string) string {
	if tipo == nil || strings.TrimSpace(*tipo) == "" {
		return UnknownDocumentType
	}
	return cases.Lower(language.Und).String(*tipo)
}

// TypeBreakdown conteos por tipo ya normalizado.
type TypeBreakdown struct {
	Total     int64
	Aprovado  int64
	Reprovado int64
	Pendente  int64
}

// GroupByType agrupa los conteos crudos por clave normalizada.
// Tipos que colapsan a la misma clave (p. ej. "RG" y "rg") se suman.
func GroupByType(rows []entity.TypeCounts) map[string]TypeBreakdown {
	out := make(map[string]TypeBreakdown, len(rows))
	for _, r := range rows {
		key := DocumentTypeKey(r.Tipo)
		acc := out[key]
		acc.Total += r.Total
		acc.Aprovado += r.Aprovado
		acc.Reprovado += r.Reprovado
		acc.Pendente += r.Pendente
		out[key] = acc
	}
	return out
}
