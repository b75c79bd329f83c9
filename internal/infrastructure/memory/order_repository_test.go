package memory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allegrotrade/marketplace-api/internal/domain/entity"
	"github.com/allegrotrade/marketplace-api/internal/infrastructure/memory"
)

func newOrder(id, buyer, seller string) *entity.Order {
	now := time.Now()
	return &entity.Order{
		ID:              id,
		BuyerCompanyID:  buyer,
		SellerCompanyID: seller,
		InventoryID:     "i1",
		Quantity:        2,
		TotalPrice:      decimal.RequireFromString("20.00"),
		Status:          entity.OrderPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestOrderRepo_CreateYGet(t *testing.T) {
	repo := memory.NewOrderRepository()
	o := newOrder("o1", "b1", "s1")
	require.NoError(t, repo.Create(o))

	got, err := repo.GetByID("o1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *o, *got)
}

func TestOrderRepo_ListPorCompradorYVendedor(t *testing.T) {
	repo := memory.NewOrderRepository()
	require.NoError(t, repo.Create(newOrder("o1", "b1", "s1")))
	require.NoError(t, repo.Create(newOrder("o2", "b1", "s2")))
	require.NoError(t, repo.Create(newOrder("o3", "b2", "s1")))

	compras, err := repo.ListByBuyer("b1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"o1", "o2"}, orderIDs(compras))

	ventas, err := repo.ListBySeller("s1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"o1", "o3"}, orderIDs(ventas))

	vacio, err := repo.ListByBuyer("sin-ordenes")
	require.NoError(t, err)
	assert.Empty(t, vacio)
}

func TestOrderRepo_DeleteEsIdempotente(t *testing.T) {
	repo := memory.NewOrderRepository()
	require.NoError(t, repo.Create(newOrder("o1", "b1", "s1")))

	removed, err := repo.Delete("o1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete("o1")
	require.NoError(t, err)
	assert.False(t, removed)
}

func orderIDs(list []*entity.Order) []string {
	ids := make([]string, 0, len(list))
	for _, o := range list {
		ids = append(ids, o.ID)
	}
	return ids
}
