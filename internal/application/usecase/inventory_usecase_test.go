package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allegrotrade/marketplace-api/internal/application/dto"
	"github.com/allegrotrade/marketplace-api/internal/application/usecase"
	"github.com/allegrotrade/marketplace-api/internal/domain/entity"
	"github.com/allegrotrade/marketplace-api/internal/infrastructure/memory"
)

func TestInventoryUC_Create_StatusPorDefectoEsActive(t *testing.T) {
	uc := usecase.NewInventoryUseCase(memory.NewInventoryRepository())

	out, err := uc.Create(dto.CreateInventoryRequest{
		CompanyID:  "c1",
		PartNumber: "NE555",
		Quantity:   100,
		Price:      decimal.RequireFromString("0.35"),
		Condition:  entity.ConditionNew,
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.ID)
	assert.Equal(t, entity.StatusActive, out.Status)
	assert.False(t, out.ListedDate.IsZero())
}

func TestInventoryUC_Create_RespetaStatusExplicito(t *testing.T) {
	uc := usecase.NewInventoryUseCase(memory.NewInventoryRepository())

	out, err := uc.Create(dto.CreateInventoryRequest{CompanyID: "c1", PartNumber: "X", Status: "paused"})
	require.NoError(t, err)
	assert.Equal(t, "paused", out.Status)

	active, err := uc.ListActive()
	require.NoError(t, err)
	assert.Empty(t, active, "un item paused no aparece en el listado del marketplace")
}

func TestInventoryUC_Update_ParcialYListedDateIntacto(t *testing.T) {
	uc := usecase.NewInventoryUseCase(memory.NewInventoryRepository())
	created, err := uc.Create(dto.CreateInventoryRequest{
		CompanyID:  "c1",
		PartNumber: "STM32F103",
		Quantity:   10,
		Price:      decimal.RequireFromString("2.10"),
	})
	require.NoError(t, err)

	qty := 3
	status := "sold"
	updated, err := uc.Update(created.ID, dto.UpdateInventoryRequest{Quantity: &qty, Status: &status})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, 3, updated.Quantity)
	assert.Equal(t, "sold", updated.Status)
	assert.Equal(t, "STM32F103", updated.PartNumber, "los campos no enviados quedan intactos")
	assert.Equal(t, created.ListedDate, updated.ListedDate, "listedDate no es actualizable")
}

func TestInventoryUC_Update_Inexistente_DevuelveNilNil(t *testing.T) {
	uc := usecase.NewInventoryUseCase(memory.NewInventoryRepository())
	qty := 1
	out, err := uc.Update("fantasma", dto.UpdateInventoryRequest{Quantity: &qty})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestInventoryUC_Search_DelegaAlStore(t *testing.T) {
	uc := usecase.NewInventoryUseCase(memory.NewInventoryRepository())
	_, err := uc.Create(dto.CreateInventoryRequest{CompanyID: "c1", PartNumber: "LM358", Manufacturer: "Texas Instruments"})
	require.NoError(t, err)

	list, err := uc.Search("texas")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "LM358", list[0].PartNumber)
}
