package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/allegrotrade/marketplace-api/internal/domain/entity"
	"github.com/allegrotrade/marketplace-api/internal/domain/repository"
)

// Asegura que InventoryRepo implementa repository.InventoryRepository.
var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre un map en memoria.
type InventoryRepo struct {
	mu    sync.RWMutex
	items map[string]entity.Inventory
}

// NewInventoryRepository construye el adaptador en memoria para inventario.
func NewInventoryRepository() *InventoryRepo {
	return &InventoryRepo{items: make(map[string]entity.Inventory)}
}

// Create almacena un nuevo item.
func (r *InventoryRepo) Create(item *entity.Inventory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = *item
	return nil
}

// GetByID devuelve el item o (nil, nil) si no existe, sin filtro de status.
func (r *InventoryRepo) GetByID(id string) (*entity.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

// ListActive es el listado masivo del marketplace: solo items con status
// "active". Es política del diseño original, no un flag aparte.
func (r *InventoryRepo) ListActive() ([]*entity.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(it entity.Inventory) bool { return it.Status == entity.StatusActive }), nil
}

// ListByCompany devuelve todos los items de una empresa, en cualquier status
// (la empresa administra también sus items pausados o agotados).
func (r *InventoryRepo) ListByCompany(companyID string) ([]*entity.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(it entity.Inventory) bool { return it.CompanyID == companyID }), nil
}

// ListByCategory filtra por igualdad de categoría Y status activo.
func (r *InventoryRepo) ListByCategory(category string) ([]*entity.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(it entity.Inventory) bool {
		return it.Category == category && it.Status == entity.StatusActive
	}), nil
}

// Search hace match de substring sin distinguir mayúsculas contra partNumber,
// manufacturer, description y category, solo sobre items activos. Sin ranking
// ni tokenización: "algún campo contiene la consulta".
func (r *InventoryRepo) Search(query string) ([]*entity.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q := strings.ToLower(query)
	return r.collect(func(it entity.Inventory) bool {
		if it.Status != entity.StatusActive {
			return false
		}
		return strings.Contains(strings.ToLower(it.PartNumber), q) ||
			strings.Contains(strings.ToLower(it.Manufacturer), q) ||
			strings.Contains(strings.ToLower(it.Description), q) ||
			strings.Contains(strings.ToLower(it.Category), q)
	}), nil
}

// Update reemplaza el item almacenado (last writer wins).
func (r *InventoryRepo) Update(item *entity.Inventory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return nil
	}
	r.items[item.ID] = *item
	return nil
}

// Delete elimina el item si existe y reporta si hubo borrado. Idempotente.
func (r *InventoryRepo) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func (r *InventoryRepo) collect(keep func(entity.Inventory) bool) []*entity.Inventory {
	list := make([]*entity.Inventory, 0, len(r.items))
	for _, it := range r.items {
		if keep(it) {
			it := it
			list = append(list, &it)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ListedDate.After(list[j].ListedDate) })
	return list
}
