package repository

import (
	"context"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	List(ctx context.Context) ([]*entity.Company, error)
	// Update sobrescribe todas las columnas; domain.ErrNotFound si el id no existe.
	Update(ctx context.Context, company *entity.Company) error
	Delete(ctx context.Context, id string) error
}
