package entity

import "time"

// Situaciones del proceso de onboarding del candidato.
const (
	SituacaoPendente   = "Pendente"
	SituacaoFinalizado = "Processo Finalizado"
)

// Candidate representa a una persona en proceso de onboarding (tabla candidatos).
type Candidate struct {
	ID           string
	Nome         string
	Email        string
	PasswordHash string // bcrypt de la credencial derivada del CPF
	CPF          string
	Telefone     string
	Estado       string
	Vaga         string
	Genero       string
	Empresa      string
	Situacao     string
	CreatedAt    time.Time
}
