package repository

import "github.com/allegrotrade/marketplace-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	List() ([]*entity.Company, error)
	ListVerified() ([]*entity.Company, error)
	Update(company *entity.Company) error
	Delete(id string) (bool, error)
}
