package memory

import (
	"sort"
	"sync"

	"github.com/allegrotrade/marketplace-api/internal/domain/entity"
	"github.com/allegrotrade/marketplace-api/internal/domain/repository"
)

// Asegura que OrderRepo implementa repository.OrderRepository.
var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre un map en memoria.
type OrderRepo struct {
	mu     sync.RWMutex
	orders map[string]entity.Order
}

// NewOrderRepository construye el adaptador en memoria para órdenes.
func NewOrderRepository() *OrderRepo {
	return &OrderRepo{orders: make(map[string]entity.Order)}
}

// Create almacena una nueva orden. No verifica que las referencias
// (empresas, inventario) existan: son referencias débiles.
func (r *OrderRepo) Create(order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = *order
	return nil
}

// GetByID devuelve la orden o (nil, nil) si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

// List devuelve todas las órdenes, más recientes primero.
func (r *OrderRepo) List() ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(entity.Order) bool { return true }), nil
}

// ListByBuyer devuelve las órdenes donde la empresa figura como compradora.
func (r *OrderRepo) ListByBuyer(buyerCompanyID string) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(o entity.Order) bool { return o.BuyerCompanyID == buyerCompanyID }), nil
}

// ListBySeller devuelve las órdenes donde la empresa figura como vendedora.
func (r *OrderRepo) ListBySeller(sellerCompanyID string) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(o entity.Order) bool { return o.SellerCompanyID == sellerCompanyID }), nil
}

// Update reemplaza la orden almacenada (last writer wins, sin control de
// concurrencia optimista). El refresco de UpdatedAt lo hace el caso de uso.
func (r *OrderRepo) Update(order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.ID]; !ok {
		return nil
	}
	r.orders[order.ID] = *order
	return nil
}

// Delete elimina la orden si existe y reporta si hubo borrado. Idempotente.
func (r *OrderRepo) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return false, nil
	}
	delete(r.orders, id)
	return true, nil
}

func (r *OrderRepo) collect(keep func(entity.Order) bool) []*entity.Order {
	list := make([]*entity.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if keep(o) {
			o := o
			list = append(list, &o)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list
}
