package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/dto"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/entity"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo repository.CompanyRepository
	now  func() time.Time
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, now: time.Now}
}

// Create crea una nueva empresa. nome y cnpj son obligatorios.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if missing := missingFields(field{"nome", in.Nome}, field{"cnpj", in.CNPJ}); len(missing) > 0 {
		return nil, domain.MissingField(missing...)
	}
	company := &entity.Company{
		ID:                  uuid.New().String(),
		Nome:                in.Nome,
		CNPJ:                in.CNPJ,
		Planos:              in.Planos,
		EmailResponsavel:    in.EmailResponsavel,
		TelefoneResponsavel: in.TelefoneResponsavel,
		CreatedAt:           uc.now(),
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// List lista todas las empresas.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return items, nil
}

// Update sobrescribe todas las columnas. id, nome y cnpj son obligatorios.
func (uc *CompanyUseCase) Update(ctx context.Context, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, domain.MissingField("id")
	}
	if missing := missingFields(field{"nome", in.Nome}, field{"cnpj", in.CNPJ}); len(missing) > 0 {
		return nil, domain.MissingField(missing...)
	}
	company := &entity.Company{
		ID:                  in.ID,
		Nome:                in.Nome,
		CNPJ:                in.CNPJ,
		Planos:              in.Planos,
		EmailResponsavel:    in.EmailResponsavel,
		TelefoneResponsavel: in.TelefoneResponsavel,
	}
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// Delete borra la empresa por id.
func (uc *CompanyUseCase) Delete(ctx context.Context, id string) (*dto.MessageResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.MissingField("id")
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: fmt.Sprintf("Empresa com id %s deletada.", id)}, nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:                  c.ID,
		Nome:                c.Nome,
		CNPJ:                c.CNPJ,
		Planos:              c.Planos,
		EmailResponsavel:    c.EmailResponsavel,
		TelefoneResponsavel: c.TelefoneResponsavel,
	}
}
