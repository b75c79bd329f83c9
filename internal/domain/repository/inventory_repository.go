package repository

import "github.com/allegrotrade/marketplace-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para Inventory (DIP).
//
// ListActive es la lectura masiva "sin calificar" del diseño original: solo
// devuelve items con status "active". ListByCompany NO aplica ese filtro
// (una empresa ve todos sus items, en cualquier status).
type InventoryRepository interface {
	Create(item *entity.Inventory) error
	GetByID(id string) (*entity.Inventory, error)
	ListActive() ([]*entity.Inventory, error)
	ListByCompany(companyID string) ([]*entity.Inventory, error)
	ListByCategory(category string) ([]*entity.Inventory, error)
	Search(query string) ([]*entity.Inventory, error)
	Update(item *entity.Inventory) error
	Delete(id string) (bool, error)
}
