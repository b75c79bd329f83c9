package repository

import "github.com/allegrotrade/marketplace-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	List() ([]*entity.Order, error)
	ListByBuyer(buyerCompanyID string) ([]*entity.Order, error)
	ListBySeller(sellerCompanyID string) ([]*entity.Order, error)
	Update(order *entity.Order) error
	Delete(id string) (bool, error)
}
