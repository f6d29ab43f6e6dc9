package entity

// ApprovalCounts conteos crudos para la tasa de aprobación.
type ApprovalCounts struct {
	Aprovados int64
	Total     int64
}

// TypeCounts conteos por tipo de documento tal como salen del GROUP BY (tipo sin normalizar).
type TypeCounts struct {
	Tipo      *string
	Total     int64
	Aprovado  int64
	Reprovado int64
	Pendente  int64
}
