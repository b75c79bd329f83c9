package memory

import (
	"sort"
	"sync"

	"github.com/allegrotrade/marketplace-api/internal/domain/entity"
	"github.com/allegrotrade/marketplace-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre un map en memoria.
type CompanyRepo struct {
	mu        sync.RWMutex
	companies map[string]entity.Company
}

// NewCompanyRepository construye el adaptador en memoria para empresas.
func NewCompanyRepository() *CompanyRepo {
	return &CompanyRepo{companies: make(map[string]entity.Company)}
}

// Create almacena una nueva empresa.
func (r *CompanyRepo) Create(company *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.companies[company.ID] = *company
	return nil
}

// GetByID devuelve la empresa o (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// List devuelve todas las empresas, más recientes primero.
func (r *CompanyRepo) List() ([]*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(entity.Company) bool { return true }), nil
}

// ListVerified devuelve solo las empresas con Verified == 1.
func (r *CompanyRepo) ListVerified() ([]*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(c entity.Company) bool { return c.Verified == entity.CompanyVerified }), nil
}

// Update reemplaza la empresa almacenada (last writer wins).
func (r *CompanyRepo) Update(company *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.companies[company.ID]; !ok {
		return nil
	}
	r.companies[company.ID] = *company
	return nil
}

// Delete elimina la empresa si existe y reporta si hubo borrado. Idempotente.
// NO borra en cascada: inventario y órdenes que la referencien quedan colgantes.
func (r *CompanyRepo) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.companies[id]; !ok {
		return false, nil
	}
	delete(r.companies, id)
	return true, nil
}

// collect filtra y ordena por MemberSince descendente. El orden de iteración
// de un map no es determinista, así que el orden se fija aquí.
func (r *CompanyRepo) collect(keep func(entity.Company) bool) []*entity.Company {
	list := make([]*entity.Company, 0, len(r.companies))
	for _, c := range r.companies {
		if keep(c) {
			c := c
			list = append(list, &c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].MemberSince.After(list[j].MemberSince) })
	return list
}
