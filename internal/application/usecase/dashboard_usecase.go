package usecase

import (
	"github.com/allegrotrade/marketplace-api/internal/application/dto"
	"github.com/allegrotrade/marketplace-api/internal/domain/entity"
	"github.com/allegrotrade/marketplace-api/internal/domain/repository"
)

// DashboardUseCase agrega las métricas que muestra el dashboard de una
// empresa: compras, ventas, total y publicaciones activas.
type DashboardUseCase struct {
	orderRepo     repository.OrderRepository
	inventoryRepo repository.InventoryRepository
}

// NewDashboardUseCase construye el caso de uso con los puertos de lectura.
func NewDashboardUseCase(orderRepo repository.OrderRepository, inventoryRepo repository.InventoryRepository) *DashboardUseCase {
	return &DashboardUseCase{orderRepo: orderRepo, inventoryRepo: inventoryRepo}
}

// Summary calcula las métricas de una empresa. No falla por empresa
// inexistente: una empresa sin datos simplemente suma ceros.
func (uc *DashboardUseCase) Summary(companyID string) (*dto.DashboardSummaryResponse, error) {
	purchases, err := uc.orderRepo.ListByBuyer(companyID)
	if err != nil {
		return nil, err
	}
	sales, err := uc.orderRepo.ListBySeller(companyID)
	if err != nil {
		return nil, err
	}
	items, err := uc.inventoryRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	active := 0
	for _, it := range items {
		if it.Status == entity.StatusActive {
			active++
		}
	}
	return &dto.DashboardSummaryResponse{
		CompanyID:      companyID,
		PurchaseOrders: len(purchases),
		SalesOrders:    len(sales),
		TotalOrders:    len(purchases) + len(sales),
		ActiveListings: active,
	}, nil
}
