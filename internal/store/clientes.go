package store

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/model"
)

// ClienteStore is the customer directory. Entries are never mutated or deleted;
// the walk-in sentinel is created at construction and always present.
type ClienteStore struct {
	mu        sync.RWMutex
	clientes  []model.Cliente
	porID     map[uuid.UUID]int
	mostrador uuid.UUID
}

// NewClienteStore builds the directory pre-seeded with the walk-in customer.
func NewClienteStore() *ClienteStore {
	s := &ClienteStore{porID: make(map[uuid.UUID]int)}
	mostrador := s.Crear(model.Cliente{
		Nombre:    "CONSUMIDOR FINAL",
		Documento: "2222222222",
		Telefono:  "0",
		Direccion: "MOSTRADOR",
	})
	s.mostrador = mostrador.ID
	return s
}

// Crear registers a customer. The name is stored upper-cased; the document is
// not checked for uniqueness.
func (s *ClienteStore) Crear(c model.Cliente) model.Cliente {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.Nombre = strings.ToUpper(c.Nombre)
	s.porID[c.ID] = len(s.clientes)
	s.clientes = append(s.clientes, c)
	return c
}

// Get returns the customer, or ErrClienteNoEncontrado.
func (s *ClienteStore) Get(id uuid.UUID) (model.Cliente, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.porID[id]
	if !ok {
		return model.Cliente{}, ErrClienteNoEncontrado
	}
	return s.clientes[idx], nil
}

// List returns every customer in registration order.
func (s *ClienteStore) List() []model.Cliente {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Cliente, len(s.clientes))
	copy(out, s.clientes)
	return out
}

// Mostrador returns the walk-in sentinel customer.
func (s *ClienteStore) Mostrador() model.Cliente {
	c, _ := s.Get(s.mostrador)
	return c
}
