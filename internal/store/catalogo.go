package store

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/model"
)

// FiltroCatalogo narrows a catalog listing. Both filters are ANDed:
// Nombre is a case-insensitive substring match, Categoria an exact match
// (empty or "Todas" disables the category filter).
type FiltroCatalogo struct {
	Nombre    string
	Categoria string
}

// LineaDescuento is one entry of an atomic bulk stock decrement.
type LineaDescuento struct {
	ProductoID uuid.UUID
	Nombre     string
	Cantidad   decimal.Decimal
}

// StockInsuficienteError reports the first cart line whose requested quantity
// exceeds the available stock. A missing product counts as zero available.
type StockInsuficienteError struct {
	Producto   string
	Disponible decimal.Decimal
	Solicitado decimal.Decimal
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s: disponible %s, solicitado %s",
		e.Producto, e.Disponible, e.Solicitado)
}

// CatalogoStore owns the live product collection and its stock levels.
// All access goes through the mutex so that a sale commit can check and
// decrement every line as one indivisible step.
type CatalogoStore struct {
	mu        sync.RWMutex
	productos map[uuid.UUID]model.Producto
	orden     []uuid.UUID // insertion order, used for stable listings
}

func NewCatalogoStore() *CatalogoStore {
	return &CatalogoStore{productos: make(map[uuid.UUID]model.Producto)}
}

// Crear registers a new product. Used by seeding; the id must be unset or unique.
func (s *CatalogoStore) Crear(p model.Producto) model.Producto {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if _, ok := s.productos[p.ID]; !ok {
		s.orden = append(s.orden, p.ID)
	}
	s.productos[p.ID] = p
	return p
}

// Get returns a copy of the product, or ErrProductoNoEncontrado.
func (s *CatalogoStore) Get(id uuid.UUID) (model.Producto, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.productos[id]
	if !ok {
		return model.Producto{}, ErrProductoNoEncontrado
	}
	return p, nil
}

// List returns the products matching the filter, in insertion order.
func (s *CatalogoStore) List(filtro FiltroCatalogo) []model.Producto {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nombre := strings.ToLower(filtro.Nombre)
	categoria := filtro.Categoria
	if categoria == "Todas" {
		categoria = ""
	}

	out := make([]model.Producto, 0, len(s.orden))
	for _, id := range s.orden {
		p := s.productos[id]
		if nombre != "" && !strings.Contains(strings.ToLower(p.Nombre), nombre) {
			continue
		}
		if categoria != "" && string(p.Categoria) != categoria {
			continue
		}
		out = append(out, p)
	}
	return out
}

// AplicarDeltaStock adds delta (may be negative) to the product's stock.
// The result is floored at zero so stock can never go negative.
func (s *CatalogoStore) AplicarDeltaStock(id uuid.UUID, delta decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.productos[id]
	if !ok {
		return ErrProductoNoEncontrado
	}
	nuevo := p.Stock.Add(delta)
	if nuevo.IsNegative() {
		nuevo = decimal.Zero
	}
	p.Stock = nuevo
	s.productos[id] = p
	return nil
}

// ReemplazarProducto overwrites every mutable field of an existing product.
// The id itself is immutable: a replacement for an unknown id fails.
func (s *CatalogoStore) ReemplazarProducto(p model.Producto) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.productos[p.ID]; !ok {
		return ErrProductoNoEncontrado
	}
	s.productos[p.ID] = p
	return nil
}

// DescontarLote validates every line against current stock and, only when all
// pass, decrements them. Scanning follows cart order so the first offending
// line is the one reported. On failure nothing changes.
func (s *CatalogoStore) DescontarLote(lineas []LineaDescuento) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range lineas {
		p, ok := s.productos[l.ProductoID]
		if !ok {
			return &StockInsuficienteError{
				Producto:   l.Nombre,
				Disponible: decimal.Zero,
				Solicitado: l.Cantidad,
			}
		}
		if p.Stock.LessThan(l.Cantidad) {
			return &StockInsuficienteError{
				Producto:   p.Nombre,
				Disponible: p.Stock,
				Solicitado: l.Cantidad,
			}
		}
	}

	for _, l := range lineas {
		p := s.productos[l.ProductoID]
		nuevo := p.Stock.Sub(l.Cantidad)
		if nuevo.IsNegative() {
			nuevo = decimal.Zero
		}
		p.Stock = nuevo
		s.productos[l.ProductoID] = p
	}
	return nil
}
