package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allegrotrade/marketplace-api/internal/application/usecase"
	"github.com/allegrotrade/marketplace-api/internal/domain/entity"
	"github.com/allegrotrade/marketplace-api/internal/infrastructure/memory"
)

func TestDashboardUC_Summary(t *testing.T) {
	orderRepo := memory.NewOrderRepository()
	invRepo := memory.NewInventoryRepository()
	uc := usecase.NewDashboardUseCase(orderRepo, invRepo)

	require.NoError(t, orderRepo.Create(&entity.Order{ID: "o1", BuyerCompanyID: "c1", SellerCompanyID: "c2"}))
	require.NoError(t, orderRepo.Create(&entity.Order{ID: "o2", BuyerCompanyID: "c1", SellerCompanyID: "c3"}))
	require.NoError(t, orderRepo.Create(&entity.Order{ID: "o3", BuyerCompanyID: "c2", SellerCompanyID: "c1"}))
	require.NoError(t, invRepo.Create(&entity.Inventory{ID: "i1", CompanyID: "c1", Status: entity.StatusActive}))
	require.NoError(t, invRepo.Create(&entity.Inventory{ID: "i2", CompanyID: "c1", Status: "paused"}))
	require.NoError(t, invRepo.Create(&entity.Inventory{ID: "i3", CompanyID: "c2", Status: entity.StatusActive}))

	out, err := uc.Summary("c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", out.CompanyID)
	assert.Equal(t, 2, out.PurchaseOrders)
	assert.Equal(t, 1, out.SalesOrders)
	assert.Equal(t, 3, out.TotalOrders)
	assert.Equal(t, 1, out.ActiveListings, "solo cuentan las publicaciones activas de la empresa")
}

func TestDashboardUC_Summary_EmpresaSinDatosSumaCeros(t *testing.T) {
	uc := usecase.NewDashboardUseCase(memory.NewOrderRepository(), memory.NewInventoryRepository())

	out, err := uc.Summary("sin-datos")
	require.NoError(t, err)
	assert.Equal(t, 0, out.TotalOrders)
	assert.Equal(t, 0, out.ActiveListings)
}
