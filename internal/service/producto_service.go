package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/dto"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/model"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/store"
)

var errCategoriaInvalida = errors.New("categoria invalida")

// ProductoService exposes the catalog to the HTTP surface. Products are never
// deleted; editing is a full overwrite of the mutable fields.
type ProductoService interface {
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	AjustarStock(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (*dto.ProductoResponse, error)
}

type productoService struct {
	catalogo *store.CatalogoStore
}

func NewProductoService(catalogo *store.CatalogoStore) ProductoService {
	return &productoService{catalogo: catalogo}
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.catalogo.Get(id)
	if err != nil {
		return nil, err
	}
	return productoToResponse(p), nil
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	productos := s.catalogo.List(store.FiltroCatalogo{
		Nombre:    filter.Nombre,
		Categoria: filter.Categoria,
	})
	data := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		data = append(data, *productoToResponse(p))
	}
	return &dto.ProductoListResponse{Data: data, Total: len(data)}, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	categoria := model.Categoria(req.Categoria)
	if !categoria.Valida() {
		return nil, errCategoriaInvalida
	}

	actualizado := model.Producto{
		ID:          id,
		Nombre:      req.Nombre,
		Categoria:   categoria,
		PrecioCosto: req.PrecioCosto,
		PrecioVenta: req.PrecioVenta,
		Unidad:      model.Unidad(req.Unidad),
		Stock:       req.Stock,
		ImagenURL:   req.ImagenURL,
	}
	if err := s.catalogo.ReemplazarProducto(actualizado); err != nil {
		return nil, err
	}
	return productoToResponse(actualizado), nil
}

func (s *productoService) AjustarStock(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (*dto.ProductoResponse, error) {
	if err := s.catalogo.AplicarDeltaStock(id, delta); err != nil {
		return nil, err
	}
	p, err := s.catalogo.Get(id)
	if err != nil {
		return nil, err
	}
	return productoToResponse(p), nil
}

func productoToResponse(p model.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:          p.ID.String(),
		Nombre:      p.Nombre,
		Categoria:   string(p.Categoria),
		PrecioCosto: p.PrecioCosto,
		PrecioVenta: p.PrecioVenta,
		MargenPct:   p.MargenPct().Round(1),
		Unidad:      string(p.Unidad),
		Stock:       p.Stock,
		ImagenURL:   p.ImagenURL,
	}
}
