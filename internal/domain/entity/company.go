package entity

import "time"

// Company representa una empresa/tenant. Candidatos y cuentas la referencian por nombre, sin FK.
type Company struct {
	ID                  string
	Nome                string
	CNPJ                string
	Planos              string
	EmailResponsavel    string
	TelefoneResponsavel string
	CreatedAt           time.Time
}
