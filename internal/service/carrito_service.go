package service

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/model"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/store"
)

// CarritoService accumulates the pending sale for the single POS terminal.
// Adding an already-present product bumps its quantity; quantities clamp at a
// minimum of 1; the price column is freely editable per line and never writes
// back to the catalog. The cart never touches stock — that is the ledger's job.
type CarritoService interface {
	Agregar(productoID uuid.UUID) ([]model.ItemCarrito, error)
	Quitar(productoID uuid.UUID)
	SetCantidad(productoID uuid.UUID, cantidad decimal.Decimal)
	SetPrecio(productoID uuid.UUID, precio decimal.Decimal)
	Limpiar()
	Items() []model.ItemCarrito
	Total() decimal.Decimal
	TotalCosto() decimal.Decimal
}

type carritoService struct {
	mu       sync.Mutex
	items    []model.ItemCarrito
	catalogo *store.CatalogoStore
}

func NewCarritoService(catalogo *store.CatalogoStore) CarritoService {
	return &carritoService{catalogo: catalogo}
}

func (s *carritoService) Agregar(productoID uuid.UUID) ([]model.ItemCarrito, error) {
	p, err := s.catalogo.Get(productoID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductoID == productoID {
			s.items[i].Cantidad = s.items[i].Cantidad.Add(decimal.NewFromInt(1))
			return s.snapshotLocked(), nil
		}
	}
	s.items = append(s.items, model.NuevoItemCarrito(p))
	return s.snapshotLocked(), nil
}

func (s *carritoService) Quitar(productoID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.items[:0]
	for _, it := range s.items {
		if it.ProductoID != productoID {
			out = append(out, it)
		}
	}
	s.items = out
}

// SetCantidad clamps silently to a minimum of 1; unknown lines are ignored.
func (s *carritoService) SetCantidad(productoID uuid.UUID, cantidad decimal.Decimal) {
	uno := decimal.NewFromInt(1)
	if cantidad.LessThan(uno) {
		cantidad = uno
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductoID == productoID {
			s.items[i].Cantidad = cantidad
			return
		}
	}
}

// SetPrecio accepts any numeric value, zero and negatives included. The source
// system never validated the override and that behavior is kept.
func (s *carritoService) SetPrecio(productoID uuid.UUID, precio decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductoID == productoID {
			s.items[i].PrecioUnitario = precio
			return
		}
	}
}

func (s *carritoService) Limpiar() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

func (s *carritoService) Items() []model.ItemCarrito {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *carritoService) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

func (s *carritoService) TotalCosto() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.SubtotalCosto())
	}
	return total
}

func (s *carritoService) snapshotLocked() []model.ItemCarrito {
	out := make([]model.ItemCarrito, len(s.items))
	copy(out, s.items)
	return out
}
