// Package memory implementa el ProductStore sobre un slice ordenado en memoria.
// No hay persistencia durable: la colección vive lo que vive el proceso, igual
// que el estado de sesión del cliente que reemplaza.
package memory

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductStore = (*ProductStore)(nil)

// ProductStore colección ordenada de productos con dedup por id.
// El mutex serializa las cuatro mutaciones; cada una es atómica para
// cualquier observador (valida primero, muta después).
type ProductStore struct {
	mu    sync.RWMutex
	items []entity.Product
	ids   map[int]struct{}
}

// NewProductStore construye un store vacío.
func NewProductStore() *ProductStore {
	return &ProductStore{ids: make(map[int]struct{})}
}

// UpsertMany mezcla items: un id ya presente gana el primero visto (un re-fetch
// remoto nunca sobreescribe ni duplica). Los nuevos se anexan en el orden recibido.
func (s *ProductStore) UpsertMany(items []entity.Product) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	inserted := 0
	for _, it := range items {
		if _, ok := s.ids[it.ID]; ok {
			continue
		}
		s.ids[it.ID] = struct{}{}
		s.items = append(s.items, it)
		inserted++
	}
	return inserted
}

// Add valida, asigna id = max(ids)+1 (1 si el store está vacío) y antepone el
// producto para que las altas recientes salgan primero. Ante error de
// validación el store queda intacto.
func (s *ProductStore) Add(fields entity.Product) (entity.Product, error) {
	if strings.TrimSpace(fields.Title) == "" {
		return entity.Product{}, fmt.Errorf("%w: title es requerido", domain.ErrValidation)
	}
	if fields.Price.LessThan(decimal.Zero) {
		return entity.Product{}, fmt.Errorf("%w: price no puede ser negativo", domain.ErrValidation)
	}
	if fields.Stock < 0 {
		return entity.Product{}, fmt.Errorf("%w: stock no puede ser negativo", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := fields
	p.ID = s.nextIDLocked()
	s.ids[p.ID] = struct{}{}
	s.items = slices.Insert(s.items, 0, p)
	return p, nil
}

// Edit sobreescribe los campos presentes en patch sin mover el producto de su
// posición. Devuelve domain.ErrNotFound si el id no existe.
func (s *ProductStore) Edit(id int, patch entity.ProductPatch) (entity.Product, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return entity.Product{}, fmt.Errorf("%w: title no puede quedar vacío", domain.ErrValidation)
	}
	if patch.Price != nil && patch.Price.LessThan(decimal.Zero) {
		return entity.Product{}, fmt.Errorf("%w: price no puede ser negativo", domain.ErrValidation)
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return entity.Product{}, fmt.Errorf("%w: stock no puede ser negativo", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfLocked(id)
	if i < 0 {
		return entity.Product{}, domain.ErrNotFound
	}
	p := &s.items[i]
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Thumbnail != nil {
		p.Thumbnail = *patch.Thumbnail
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	return *p, nil
}

// Delete elimina el producto por id. El id queda libre: si una página remota
// posterior lo trae de vuelta, se re-inserta (el borrado es un override de
// sesión, no un veto permanente).
func (s *ProductStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfLocked(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	s.items = slices.Delete(s.items, i, i+1)
	delete(s.ids, id)
	return nil
}

// Snapshot devuelve una copia defensiva: mutar el resultado jamás afecta al store.
func (s *ProductStore) Snapshot() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Product, len(s.items))
	copy(out, s.items)
	return out
}

// Size devuelve el número de productos cargados.
func (s *ProductStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// nextIDLocked asigna max(ids)+1. Seguro aquí porque la mutación está
// serializada por el mutex; un contexto multi-writer necesitaría un contador
// monotónico.
func (s *ProductStore) nextIDLocked() int {
	max := 0
	for id := range s.ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func (s *ProductStore) indexOfLocked(id int) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
