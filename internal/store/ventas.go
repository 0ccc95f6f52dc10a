package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/model"
)

// VentaStore is the append-only sale history. Membership never shrinks; the
// only permitted mutation of an existing sale is the date correction.
type VentaStore struct {
	mu     sync.RWMutex
	ventas []model.Venta
	porID  map[uuid.UUID]int
}

func NewVentaStore() *VentaStore {
	return &VentaStore{porID: make(map[uuid.UUID]int)}
}

// Append stores a committed sale at the end of the history.
func (s *VentaStore) Append(v model.Venta) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.porID[v.ID] = len(s.ventas)
	s.ventas = append(s.ventas, v.Clone())
}

// Get returns a deep copy of the sale, or ErrVentaNoEncontrada.
func (s *VentaStore) Get(id uuid.UUID) (model.Venta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.porID[id]
	if !ok {
		return model.Venta{}, ErrVentaNoEncontrada
	}
	return s.ventas[idx].Clone(), nil
}

// List returns a deep copy of the whole history in commit order.
func (s *VentaStore) List() []model.Venta {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Venta, 0, len(s.ventas))
	for _, v := range s.ventas {
		out = append(out, v.Clone())
	}
	return out
}

// Count reports how many sales have been committed.
func (s *VentaStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ventas)
}

// ActualizarFecha rewrites only the timestamp of an existing sale.
func (s *VentaStore) ActualizarFecha(id uuid.UUID, fecha time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.porID[id]
	if !ok {
		return ErrVentaNoEncontrada
	}
	s.ventas[idx].Fecha = fecha
	return nil
}
