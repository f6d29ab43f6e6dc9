package dto

import "time"

// CreateCandidateRequest alta de candidato; nome, email, cpf y empresa son obligatorios.
type CreateCandidateRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	CPF      string `json:"cpf"`
	Telefone string `json:"telefone"`
	Estado   string `json:"estado"`
	Vaga     string `json:"vaga"`
	Genero   string `json:"genero"`
	Empresa  string `json:"empresa"`
}

// CreateCandidateResponse resultado del alta. La credencial provisoria no se devuelve.
type CreateCandidateResponse struct {
	ID           string `json:"id"`
	UsuarioID    string `json:"usuario_id"`
	Nome         string `json:"nome"`
	Email        string `json:"email"`
	Empresa      string `json:"empresa"`
	Situacao     string `json:"situacao"`
	EmailEnviado bool   `json:"email_enviado"`
}

// CandidateResponse resumen de candidato en listados.
type CandidateResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Telefone  string    `json:"telefone"`
	Estado    string    `json:"estado"`
	Vaga      string    `json:"vaga"`
	Genero    string    `json:"genero"`
	Empresa   string    `json:"empresa"`
	Situacao  string    `json:"situacao"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateCandidateRequest sobrescribe nome, email y situacao (ausente = vacío).
type UpdateCandidateRequest struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Situacao string `json:"situacao"`
}

// UpdateCandidateResponse eco de la actualización.
type UpdateCandidateResponse struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Situacao string `json:"situacao"`
}
