package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/dto"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/store"
)

// InventarioService handles stock replenishment: incoming merchandise
// increases stock directly. Replenishments deliberately leave no ledger
// record — only sales are history.
type InventarioService interface {
	RecibirMercancia(ctx context.Context, productoID uuid.UUID, cantidad decimal.Decimal) (*dto.ProductoResponse, error)
}

type inventarioService struct {
	catalogo *store.CatalogoStore
}

func NewInventarioService(catalogo *store.CatalogoStore) InventarioService {
	return &inventarioService{catalogo: catalogo}
}

// RecibirMercancia applies stock += cantidad. Quantities must be strictly
// positive; stock is untouched on any failure.
func (s *inventarioService) RecibirMercancia(ctx context.Context, productoID uuid.UUID, cantidad decimal.Decimal) (*dto.ProductoResponse, error) {
	if !cantidad.IsPositive() {
		return nil, ErrCantidadInvalida
	}
	if err := s.catalogo.AplicarDeltaStock(productoID, cantidad); err != nil {
		return nil, err
	}

	p, err := s.catalogo.Get(productoID)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("producto", p.Nombre).
		Str("cantidad", cantidad.String()).
		Str("stock", p.Stock.String()).
		Msg("mercancia recibida")
	return productoToResponse(p), nil
}
