package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/dto"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/model"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/store"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/worker"
)

// VentaService is the sales ledger: it converts the cart into an immutable
// Venta and decrements stock as one logical transaction.
type VentaService interface {
	Registrar(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	CorregirFecha(ctx context.Context, id uuid.UUID, req dto.CorregirFechaRequest) (*dto.VentaResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error)
	Listar(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error)
}

type ventaService struct {
	mu         sync.Mutex // serializes commits
	carrito    CarritoService
	catalogo   *store.CatalogoStore
	ventas     *store.VentaStore
	clientes   *store.ClienteStore
	dispatcher *worker.Dispatcher
	ahora      func() time.Time
}

func NewVentaService(
	carrito CarritoService,
	catalogo *store.CatalogoStore,
	ventas *store.VentaStore,
	clientes *store.ClienteStore,
	dispatcher *worker.Dispatcher,
) VentaService {
	return &ventaService{
		carrito:    carrito,
		catalogo:   catalogo,
		ventas:     ventas,
		clientes:   clientes,
		dispatcher: dispatcher,
		ahora:      time.Now,
	}
}

// ── Registrar ────────────────────────────────────────────────────────────────
// Commit algorithm:
//   1. Snapshot the cart; empty cart fails.
//   2. Resolve the customer (walk-in when none given) and payment method.
//   3. DescontarLote: every line is checked against live stock and decremented
//      under one catalog lock — all or nothing. The first offending line in
//      cart order is the one reported.
//   4. Build the Venta from the cart snapshot (price overrides and costs at
//      commit time), append to history, clear the cart.
//   5. Fire-and-forget advice refresh — must never block or fail the commit.

func (s *ventaService) Registrar(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carrito.Items()
	if len(items) == 0 {
		return nil, ErrCarritoVacio
	}

	metodo := model.MetodoPago(req.MetodoPago)
	if req.MetodoPago == "" {
		metodo = model.PagoEfectivo
	}
	if !metodo.Valido() {
		return nil, ErrMetodoPagoInvalido
	}

	cliente := s.clientes.Mostrador()
	if req.ClienteID != "" {
		id, err := uuid.Parse(req.ClienteID)
		if err != nil {
			return nil, store.ErrClienteNoEncontrado
		}
		cliente, err = s.clientes.Get(id)
		if err != nil {
			return nil, err
		}
	}

	lote := make([]store.LineaDescuento, 0, len(items))
	for _, it := range items {
		lote = append(lote, store.LineaDescuento{
			ProductoID: it.ProductoID,
			Nombre:     it.Nombre,
			Cantidad:   it.Cantidad,
		})
	}
	if err := s.catalogo.DescontarLote(lote); err != nil {
		return nil, err
	}

	venta := model.Venta{
		ID:            uuid.New(),
		Items:         make([]model.ItemVenta, 0, len(items)),
		Fecha:         s.ahora(),
		ClienteID:     cliente.ID,
		ClienteNombre: cliente.Nombre,
		MetodoPago:    metodo,
	}
	for _, it := range items {
		linea := model.ItemVenta{
			ProductoID:     it.ProductoID,
			Nombre:         it.Nombre,
			Categoria:      it.Categoria,
			Unidad:         it.Unidad,
			PrecioUnitario: it.PrecioUnitario,
			PrecioCosto:    it.PrecioCosto,
			Cantidad:       it.Cantidad,
		}
		venta.Items = append(venta.Items, linea)
		venta.Total = venta.Total.Add(linea.Subtotal())
		venta.TotalCosto = venta.TotalCosto.Add(linea.SubtotalCosto())
	}

	s.ventas.Append(venta)
	s.carrito.Limpiar()

	if s.dispatcher != nil {
		s.dispatcher.EncolarConsejo()
	}

	return ventaToResponse(venta), nil
}

// ── CorregirFecha ────────────────────────────────────────────────────────────

// fechaLayouts are the accepted correction inputs: RFC 3339 plus the
// datetime-local format the POS form submits.
var fechaLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}

func (s *ventaService) CorregirFecha(ctx context.Context, id uuid.UUID, req dto.CorregirFechaRequest) (*dto.VentaResponse, error) {
	var fecha time.Time
	var err error
	for _, layout := range fechaLayouts {
		if fecha, err = time.ParseInLocation(layout, req.Fecha, time.Local); err == nil {
			break
		}
	}
	if err != nil {
		return nil, ErrFechaInvalida
	}

	if err := s.ventas.ActualizarFecha(id, fecha); err != nil {
		return nil, err
	}
	v, err := s.ventas.Get(id)
	if err != nil {
		return nil, err
	}
	return ventaToResponse(v), nil
}

// ── Queries ──────────────────────────────────────────────────────────────────

func (s *ventaService) Obtener(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error) {
	v, err := s.ventas.Get(id)
	if err != nil {
		return nil, err
	}
	return ventaToResponse(v), nil
}

func (s *ventaService) Listar(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	ventas := FiltrarPorPeriodo(s.ventas.List(), Periodo(filter.Periodo), s.ahora())
	data := make([]dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		data = append(data, *ventaToResponse(v))
	}
	return &dto.VentaListResponse{Data: data, Total: len(data)}, nil
}

func ventaToResponse(v model.Venta) *dto.VentaResponse {
	items := make([]dto.ItemVentaResponse, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, dto.ItemVentaResponse{
			ProductoID:     it.ProductoID.String(),
			Nombre:         it.Nombre,
			Categoria:      string(it.Categoria),
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			Subtotal:       it.Subtotal(),
		})
	}
	return &dto.VentaResponse{
		ID:            v.ID.String(),
		Items:         items,
		Total:         v.Total,
		TotalCosto:    v.TotalCosto,
		Utilidad:      v.Utilidad(),
		Fecha:         v.Fecha.Format(time.RFC3339),
		ClienteID:     v.ClienteID.String(),
		ClienteNombre: v.ClienteNombre,
		MetodoPago:    string(v.MetodoPago),
	}
}
