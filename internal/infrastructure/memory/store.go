// Package memory implementa los puertos de persistencia sobre memoria del
// proceso. Se usa en modo demo (sin DATABASE_URL) y en los tests de casos de
// uso. Mismas semánticas que el adaptador postgres: libro append-only, borrado
// en cascada atómico, lecturas que devuelven copias.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/wcondori/api-saltenas/internal/domain/entity"
)

// Store estado compartido de los repositorios en memoria. Un solo RWMutex
// cubre catálogo y libro: así dos Record concurrentes del mismo producto
// quedan ambos anotados y la cascada de borrado es atómica.
type Store struct {
	mu        sync.RWMutex
	products  map[string]*entity.Product
	byName    map[string]string // nombre normalizado -> id
	order     []string          // ids en orden de creación, para List estable
	movements []*entity.Movement
}

// NewStore construye un Store vacío.
func NewStore() *Store {
	return &Store{
		products: make(map[string]*entity.Product),
		byName:   make(map[string]string),
	}
}

// ── Núcleo sin locking: lo usan los repos (con lock propio) y el TxRunner
// (que ya tiene el lock exclusivo). ──

func cloneProduct(p *entity.Product) *entity.Product {
	c := *p
	return &c
}

func cloneMovement(m *entity.Movement) *entity.Movement {
	c := *m
	return &c
}

func (s *Store) createProduct(p *entity.Product) {
	c := cloneProduct(p)
	s.products[c.ID] = c
	s.byName[entity.FoldName(c.Name)] = c.ID
	s.order = append(s.order, c.ID)
}

func (s *Store) getProductByID(id string) *entity.Product {
	p, ok := s.products[id]
	if !ok {
		return nil
	}
	return cloneProduct(p)
}

func (s *Store) getProductByName(name string) *entity.Product {
	id, ok := s.byName[entity.FoldName(name)]
	if !ok {
		return nil
	}
	return cloneProduct(s.products[id])
}

func (s *Store) updateProduct(p *entity.Product) bool {
	if _, ok := s.products[p.ID]; !ok {
		return false
	}
	s.products[p.ID] = cloneProduct(p)
	return true
}

func (s *Store) listProducts() []*entity.Product {
	list := make([]*entity.Product, 0, len(s.order))
	for _, id := range s.order {
		if p, ok := s.products[id]; ok {
			list = append(list, cloneProduct(p))
		}
	}
	return list
}

func (s *Store) deleteProduct(id string) bool {
	p, ok := s.products[id]
	if !ok {
		return false
	}
	delete(s.byName, entity.FoldName(p.Name))
	delete(s.products, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *Store) createMovement(m *entity.Movement) {
	s.movements = append(s.movements, cloneMovement(m))
}

func (s *Store) listMovements(from, to *time.Time) []*entity.Movement {
	list := make([]*entity.Movement, 0, len(s.movements))
	for _, m := range s.movements {
		if from != nil && m.Date.Before(*from) {
			continue
		}
		if to != nil && m.Date.After(*to) {
			continue
		}
		list = append(list, cloneMovement(m))
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date.Before(list[j].Date) })
	return list
}

func (s *Store) sumByProduct(productID string) int {
	total := 0
	for _, m := range s.movements {
		if m.ProductID == productID {
			total += m.Quantity
		}
	}
	return total
}

func (s *Store) sumAll() map[string]int {
	sums := make(map[string]int)
	for _, m := range s.movements {
		sums[m.ProductID] += m.Quantity
	}
	return sums
}

func (s *Store) deleteMovementsByProduct(productID string) {
	kept := s.movements[:0]
	for _, m := range s.movements {
		if m.ProductID != productID {
			kept = append(kept, m)
		}
	}
	s.movements = kept
}
