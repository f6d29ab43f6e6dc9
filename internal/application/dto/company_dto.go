package dto

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Nome                string `json:"nome"`
	CNPJ                string `json:"cnpj"`
	Planos              string `json:"planos"`
	EmailResponsavel    string `json:"email_responsavel"`
	TelefoneResponsavel string `json:"telefone_responsavel"`
}

// UpdateCompanyRequest sobrescribe todas las columnas de la empresa.
type UpdateCompanyRequest struct {
	ID                  string `json:"id"`
	Nome                string `json:"nome"`
	CNPJ                string `json:"cnpj"`
	Planos              string `json:"planos"`
	EmailResponsavel    string `json:"email_responsavel"`
	TelefoneResponsavel string `json:"telefone_responsavel"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID                  string `json:"id"`
	Nome                string `json:"nome"`
	CNPJ                string `json:"cnpj"`
	Planos              string `json:"planos"`
	EmailResponsavel    string `json:"email_responsavel"`
	TelefoneResponsavel string `json:"telefone_responsavel"`
}
