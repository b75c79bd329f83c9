package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/allegrotrade/marketplace-api/internal/application/dto"
	"github.com/allegrotrade/marketplace-api/internal/domain/entity"
	"github.com/allegrotrade/marketplace-api/internal/domain/repository"
)

// InventoryUseCase publicación y consulta de items del marketplace.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso con el puerto de persistencia.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// Create publica un item. Genera ID y ListedDate. No verifica que la empresa
// dueña exista (referencia débil).
func (uc *InventoryUseCase) Create(in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.StatusActive
	}
	item := &entity.Inventory{
		ID:           uuid.New().String(),
		CompanyID:    in.CompanyID,
		PartNumber:   in.PartNumber,
		Manufacturer: in.Manufacturer,
		Category:     in.Category,
		Description:  in.Description,
		Quantity:     in.Quantity,
		Price:        in.Price,
		Condition:    in.Condition,
		DatasheetURL: in.DatasheetURL,
		ImageURL:     in.ImageURL,
		Status:       status,
		ListedDate:   time.Now(),
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toInventoryResponse(item), nil
}

// GetByID obtiene un item por ID, en cualquier status. (nil, nil) si no existe.
func (uc *InventoryUseCase) GetByID(id string) (*dto.InventoryResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toInventoryResponse(item), nil
}

// ListActive lista los items visibles del marketplace (status "active").
func (uc *InventoryUseCase) ListActive() ([]dto.InventoryResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// ListByCompany lista todos los items de una empresa, sin filtro de status.
func (uc *InventoryUseCase) ListByCompany(companyID string) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// ListByCategory lista items activos de una categoría.
func (uc *InventoryUseCase) ListByCategory(category string) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.ListByCategory(category)
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// Search busca items activos por substring (part number, fabricante,
// descripción o categoría, sin distinguir mayúsculas).
func (uc *InventoryUseCase) Search(query string) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.Search(query)
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// Update aplica solo los campos presentes (ListedDate queda intacto).
// (nil, nil) si el item no existe.
func (uc *InventoryUseCase) Update(id string, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.CompanyID != nil {
		item.CompanyID = *in.CompanyID
	}
	if in.PartNumber != nil {
		item.PartNumber = *in.PartNumber
	}
	if in.Manufacturer != nil {
		item.Manufacturer = *in.Manufacturer
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.Condition != nil {
		item.Condition = *in.Condition
	}
	if in.DatasheetURL != nil {
		item.DatasheetURL = *in.DatasheetURL
	}
	if in.ImageURL != nil {
		item.ImageURL = *in.ImageURL
	}
	if in.Status != nil {
		item.Status = *in.Status
	}
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toInventoryResponse(item), nil
}

// Delete elimina el item y reporta si existía.
func (uc *InventoryUseCase) Delete(id string) (bool, error) {
	return uc.repo.Delete(id)
}

func toInventoryResponse(it *entity.Inventory) *dto.InventoryResponse {
	if it == nil {
		return nil
	}
	return &dto.InventoryResponse{
		ID:           it.ID,
		CompanyID:    it.CompanyID,
		PartNumber:   it.PartNumber,
		Manufacturer: it.Manufacturer,
		Category:     it.Category,
		Description:  it.Description,
		Quantity:     it.Quantity,
		Price:        it.Price,
		Condition:    it.Condition,
		DatasheetURL: it.DatasheetURL,
		ImageURL:     it.ImageURL,
		Status:       it.Status,
		ListedDate:   it.ListedDate,
	}
}

func toInventoryResponses(list []*entity.Inventory) []dto.InventoryResponse {
	items := make([]dto.InventoryResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toInventoryResponse(it))
	}
	return items
}
