package memory

import (
	"context"
	"time"

	"github.com/wcondori/api-saltenas/internal/application/usecase"
	"github.com/wcondori/api-saltenas/internal/domain"
	"github.com/wcondori/api-saltenas/internal/domain/entity"
	"github.com/wcondori/api-saltenas/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta el callback con el lock exclusivo del Store tomado y con
// un snapshot para deshacer si el callback falla: el equivalente en memoria
// del Begin/Commit/Rollback del runner postgres.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el Store compartido.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run toma el lock, saca snapshot, ejecuta fn con repos sin locking propio
// (el lock ya está tomado) y restaura el snapshot si fn devuelve error.
func (r *TxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	snap := r.s.snapshot()
	if err := fn(&txProductRepo{s: r.s}, &txMovementRepo{s: r.s}); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

type storeSnapshot struct {
	products  map[string]*entity.Product
	byName    map[string]string
	order     []string
	movements []*entity.Movement
}

func (s *Store) snapshot() storeSnapshot {
	snap := storeSnapshot{
		products:  make(map[string]*entity.Product, len(s.products)),
		byName:    make(map[string]string, len(s.byName)),
		order:     append([]string(nil), s.order...),
		movements: append([]*entity.Movement(nil), s.movements...),
	}
	for id, p := range s.products {
		snap.products[id] = cloneProduct(p)
	}
	for name, id := range s.byName {
		snap.byName[name] = id
	}
	return snap
}

func (s *Store) restore(snap storeSnapshot) {
	s.products = snap.products
	s.byName = snap.byName
	s.order = snap.order
	s.movements = snap.movements
}

// ── Repos atados a la "tx": mismo núcleo, sin locking (el Run ya lo tiene). ──

type txProductRepo struct{ s *Store }

func (r *txProductRepo) Create(product *entity.Product) error {
	if _, ok := r.s.byName[entity.FoldName(product.Name)]; ok {
		return domain.ErrDuplicate
	}
	r.s.createProduct(product)
	return nil
}

func (r *txProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.s.getProductByID(id), nil
}

func (r *txProductRepo) GetByName(name string) (*entity.Product, error) {
	return r.s.getProductByName(name), nil
}

func (r *txProductRepo) Update(product *entity.Product) error {
	if !r.s.updateProduct(product) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *txProductRepo) List() ([]*entity.Product, error) {
	return r.s.listProducts(), nil
}

func (r *txProductRepo) Delete(id string) error {
	if !r.s.deleteProduct(id) {
		return domain.ErrNotFound
	}
	return nil
}

type txMovementRepo struct{ s *Store }

func (r *txMovementRepo) Create(movement *entity.Movement) error {
	r.s.createMovement(movement)
	return nil
}

func (r *txMovementRepo) ListAll(from, to *time.Time) ([]*entity.Movement, error) {
	return r.s.listMovements(from, to), nil
}

func (r *txMovementRepo) SumByProduct(productID string) (int, error) {
	return r.s.sumByProduct(productID), nil
}

func (r *txMovementRepo) SumAll() (map[string]int, error) {
	return r.s.sumAll(), nil
}

func (r *txMovementRepo) DeleteByProduct(productID string) error {
	r.s.deleteMovementsByProduct(productID)
	return nil
}
