package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/allegrotrade/marketplace-api/internal/application/dto"
	"github.com/allegrotrade/marketplace-api/internal/domain/entity"
	"github.com/allegrotrade/marketplace-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para perfiles de empresa.
type CompanyUseCase struct {
	repo     repository.CompanyRepository
	userRepo repository.UserRepository
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
// userRepo se usa para enlazar user.companyId en el registro de proveedores.
func NewCompanyUseCase(repo repository.CompanyRepository, userRepo repository.UserRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, userRepo: userRepo}
}

// Create crea una empresa. Genera ID y MemberSince. Si el request trae
// userId y ese usuario existe, le enlaza la empresa recién creada (flujo de
// registro de proveedor: primero el usuario, después su empresa).
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	company := &entity.Company{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Description:       in.Description,
		Logo:              in.Logo,
		Location:          in.Location,
		Website:           in.Website,
		Verified:          in.Verified,
		Rating:            in.Rating,
		TotalTransactions: in.TotalTransactions,
		MemberSince:       time.Now(),
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	if in.UserID != "" {
		if user, _ := uc.userRepo.GetByID(in.UserID); user != nil {
			user.CompanyID = company.ID
			_ = uc.userRepo.Update(user)
		}
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID. (nil, nil) si no existe.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toCompanyResponse(company), nil
}

// List lista empresas; con verifiedOnly se limita a las verificadas.
func (uc *CompanyUseCase) List(verifiedOnly bool) ([]dto.CompanyResponse, error) {
	var (
		list []*entity.Company
		err  error
	)
	if verifiedOnly {
		list, err = uc.repo.ListVerified()
	} else {
		list, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return items, nil
}

// Update aplica solo los campos presentes (MemberSince queda intacto).
// (nil, nil) si la empresa no existe.
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Description != nil {
		company.Description = *in.Description
	}
	if in.Logo != nil {
		company.Logo = *in.Logo
	}
	if in.Location != nil {
		company.Location = *in.Location
	}
	if in.Website != nil {
		company.Website = *in.Website
	}
	if in.Verified != nil {
		company.Verified = *in.Verified
	}
	if in.Rating != nil {
		company.Rating = *in.Rating
	}
	if in.TotalTransactions != nil {
		company.TotalTransactions = *in.TotalTransactions
	}
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Delete elimina la empresa y reporta si existía. El inventario y las órdenes
// que la referencian NO se tocan (comportamiento heredado del diseño original).
func (uc *CompanyUseCase) Delete(id string) (bool, error) {
	return uc.repo.Delete(id)
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:                c.ID,
		Name:              c.Name,
		Description:       c.Description,
		Logo:              c.Logo,
		Location:          c.Location,
		Website:           c.Website,
		Verified:          c.Verified,
		Rating:            c.Rating,
		TotalTransactions: c.TotalTransactions,
		MemberSince:       c.MemberSince,
	}
}
