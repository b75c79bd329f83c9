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

func newItem(id, companyID, partNumber, manufacturer, category, description, status string) *entity.Inventory {
	return &entity.Inventory{
		ID:           id,
		CompanyID:    companyID,
		PartNumber:   partNumber,
		Manufacturer: manufacturer,
		Category:     category,
		Description:  description,
		Quantity:     10,
		Price:        decimal.RequireFromString("1.00"),
		Condition:    entity.ConditionNew,
		Status:       status,
		ListedDate:   time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / GetByID / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryRepo_CreateYGet(t *testing.T) {
	repo := memory.NewInventoryRepository()
	item := newItem("i1", "c1", "STM32F103", "ST", "Microcontrollers", "Cortex-M3", entity.StatusActive)
	require.NoError(t, repo.Create(item))

	got, err := repo.GetByID("i1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *item, *got, "el item leído debe ser igual al creado")
}

func TestInventoryRepo_GetInexistente_DevuelveNilNil(t *testing.T) {
	repo := memory.NewInventoryRepository()
	got, err := repo.GetByID("no-existe")
	require.NoError(t, err, "ausencia no es error")
	assert.Nil(t, got)
}

func TestInventoryRepo_DeleteEsIdempotente(t *testing.T) {
	repo := memory.NewInventoryRepository()
	require.NoError(t, repo.Create(newItem("i1", "c1", "X1", "Acme", "Resistors", "", entity.StatusActive)))

	removed, err := repo.Delete("i1")
	require.NoError(t, err)
	assert.True(t, removed, "primer delete debe reportar borrado")

	got, err := repo.GetByID("i1")
	require.NoError(t, err)
	assert.Nil(t, got, "después del delete el item no debe existir")

	removed, err = repo.Delete("i1")
	require.NoError(t, err)
	assert.False(t, removed, "segundo delete debe reportar false, no error")
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtros de listado: la política de visibilidad vive en ListActive
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryRepo_ListActive_ExcluyeNoActivos(t *testing.T) {
	repo := memory.NewInventoryRepository()
	require.NoError(t, repo.Create(newItem("i1", "c1", "X1", "Acme", "Resistors", "", entity.StatusActive)))
	require.NoError(t, repo.Create(newItem("i2", "c1", "X2", "Acme", "Resistors", "", "sold")))
	require.NoError(t, repo.Create(newItem("i3", "c2", "X3", "Acme", "Resistors", "", "paused")))
	require.NoError(t, repo.Create(newItem("i4", "c2", "X4", "Acme", "Resistors", "", entity.StatusActive)))

	list, err := repo.ListActive()
	require.NoError(t, err)
	ids := idsOf(list)
	assert.ElementsMatch(t, []string{"i1", "i4"}, ids,
		"el listado masivo solo debe incluir items con status active")
}

func TestInventoryRepo_ListByCompany_IncluyeTodosLosStatus(t *testing.T) {
	repo := memory.NewInventoryRepository()
	require.NoError(t, repo.Create(newItem("i1", "c1", "X1", "Acme", "Resistors", "", entity.StatusActive)))
	require.NoError(t, repo.Create(newItem("i2", "c1", "X2", "Acme", "Resistors", "", "paused")))
	require.NoError(t, repo.Create(newItem("i3", "c2", "X3", "Acme", "Resistors", "", entity.StatusActive)))

	list, err := repo.ListByCompany("c1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"i1", "i2"}, idsOf(list),
		"el filtro por empresa NO aplica el filtro de status")
}

func TestInventoryRepo_ListByCategory_ExigeCategoriaYActivo(t *testing.T) {
	repo := memory.NewInventoryRepository()
	require.NoError(t, repo.Create(newItem("i1", "c1", "X1", "Acme", "Capacitors", "", entity.StatusActive)))
	require.NoError(t, repo.Create(newItem("i2", "c1", "X2", "Acme", "Capacitors", "", "paused")))
	require.NoError(t, repo.Create(newItem("i3", "c1", "X3", "Acme", "Resistors", "", entity.StatusActive)))

	list, err := repo.ListByCategory("Capacitors")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"i1"}, idsOf(list))
}

// ──────────────────────────────────────────────────────────────────────────────
// Search: substring sin mayúsculas sobre 4 campos, solo activos
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryRepo_Search_MatchEnCualquierCampo(t *testing.T) {
	repo := memory.NewInventoryRepository()
	require.NoError(t, repo.Create(newItem("i1", "c1", "STM32F103", "ST", "Microcontrollers", "ARM Cortex-M3", entity.StatusActive)))
	require.NoError(t, repo.Create(newItem("i2", "c1", "LM358", "Texas Instruments", "Amplifiers", "op-amp dual", entity.StatusActive)))
	require.NoError(t, repo.Create(newItem("i3", "c1", "NE555", "Texas Instruments", "Timers", "", entity.StatusActive)))

	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"por part number", "stm32", []string{"i1"}},
		{"por fabricante", "texas", []string{"i2", "i3"}},
		{"por descripción", "CORTEX", []string{"i1"}},
		{"por categoría", "timer", []string{"i3"}},
		{"sin resultados", "fpga", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			list, err := repo.Search(tc.query)
			require.NoError(t, err)
			assert.ElementsMatch(t, tc.want, idsOf(list))
		})
	}
}

func TestInventoryRepo_Search_IgnoraItemsNoActivos(t *testing.T) {
	repo := memory.NewInventoryRepository()
	require.NoError(t, repo.Create(newItem("i1", "c1", "STM32F103", "ST", "Microcontrollers", "", entity.StatusActive)))
	require.NoError(t, repo.Create(newItem("i2", "c1", "STM32F407", "ST", "Microcontrollers", "", "sold")))

	list, err := repo.Search("stm32")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"i1"}, idsOf(list),
		"items no activos no deben aparecer en la búsqueda aunque hagan match")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update: reemplazo completo, last writer wins
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryRepo_Update_ReemplazaElItem(t *testing.T) {
	repo := memory.NewInventoryRepository()
	item := newItem("i1", "c1", "X1", "Acme", "Resistors", "", entity.StatusActive)
	require.NoError(t, repo.Create(item))

	item.Quantity = 3
	item.Status = "sold"
	require.NoError(t, repo.Update(item))

	got, err := repo.GetByID("i1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 3, got.Quantity)
	assert.Equal(t, "sold", got.Status)
}

func TestInventoryRepo_Update_NoCreaSiNoExiste(t *testing.T) {
	repo := memory.NewInventoryRepository()
	require.NoError(t, repo.Update(newItem("fantasma", "c1", "X1", "Acme", "Resistors", "", entity.StatusActive)))

	got, err := repo.GetByID("fantasma")
	require.NoError(t, err)
	assert.Nil(t, got, "update de un id ausente no debe insertar")
}

// El caller no debe poder mutar el estado interno a través del puntero devuelto.
func TestInventoryRepo_GetDevuelveCopia(t *testing.T) {
	repo := memory.NewInventoryRepository()
	require.NoError(t, repo.Create(newItem("i1", "c1", "X1", "Acme", "Resistors", "", entity.StatusActive)))

	got, err := repo.GetByID("i1")
	require.NoError(t, err)
	got.Quantity = 999

	again, err := repo.GetByID("i1")
	require.NoError(t, err)
	assert.Equal(t, 10, again.Quantity, "mutar la copia devuelta no debe afectar el store")
}

func idsOf(list []*entity.Inventory) []string {
	ids := make([]string, 0, len(list))
	for _, it := range list {
		ids = append(ids, it.ID)
	}
	return ids
}
