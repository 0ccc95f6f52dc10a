package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/dto"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/model"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/store"
)

// Periodo is a named reporting window.
type Periodo string

const (
	PeriodoDia    Periodo = "dia"
	PeriodoSemana Periodo = "semana"
	PeriodoMes    Periodo = "mes"
	PeriodoAnio   Periodo = "anio"
	PeriodoTodo   Periodo = "todo"
)

// InicioPeriodo computes the window start relative to now, in local time:
// dia = midnight of today, semana = midnight of the most recent Sunday,
// mes = first of the month, anio = January 1st.
func InicioPeriodo(p Periodo, now time.Time) (time.Time, bool) {
	y, m, d := now.Date()
	loc := now.Location()
	switch p {
	case PeriodoDia:
		return time.Date(y, m, d, 0, 0, 0, 0, loc), true
	case PeriodoSemana:
		domingo := now.AddDate(0, 0, -int(now.Weekday()))
		dy, dm, dd := domingo.Date()
		return time.Date(dy, dm, dd, 0, 0, 0, 0, loc), true
	case PeriodoMes:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc), true
	case PeriodoAnio:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc), true
	default:
		return time.Time{}, false
	}
}

// FiltrarPorPeriodo keeps the sales with Fecha >= the window start, preserving
// their relative order. PeriodoTodo (and anything unknown) returns the full
// input unfiltered.
func FiltrarPorPeriodo(ventas []model.Venta, p Periodo, now time.Time) []model.Venta {
	inicio, ok := InicioPeriodo(p, now)
	if !ok {
		return ventas
	}
	out := make([]model.Venta, 0, len(ventas))
	for _, v := range ventas {
		if !v.Fecha.Before(inicio) {
			out = append(out, v)
		}
	}
	return out
}

// ReporteService computes the time-windowed analytics and tabular exports
// over the sale history and the live catalog.
type ReporteService interface {
	Resumen(ctx context.Context, filter dto.ReporteFilter) (*dto.ResumenResponse, error)
	PorCategoria(ctx context.Context, filter dto.ReporteFilter) ([]dto.CategoriaResponse, error)
	MasRentables(ctx context.Context, limit int) ([]dto.RentableResponse, error)
	VentasCSV(ctx context.Context, filter dto.ReporteFilter) ([]byte, error)
	InventarioCSV(ctx context.Context) ([]byte, error)
	Dashboard(ctx context.Context, filter dto.ReporteFilter) (*dto.DashboardResponse, error)
}

type reporteService struct {
	catalogo *store.CatalogoStore
	ventas   *store.VentaStore
	consejo  *ConsejoService
	ahora    func() time.Time
}

func NewReporteService(catalogo *store.CatalogoStore, ventas *store.VentaStore, consejo *ConsejoService) ReporteService {
	return &reporteService{catalogo: catalogo, ventas: ventas, consejo: consejo, ahora: time.Now}
}

// stockCritico is the threshold at or below which a product counts as
// low-stock on the dashboard.
var stockCritico = decimal.NewFromInt(10)

// ── Aggregation ──────────────────────────────────────────────────────────────

// Agregar sums revenue, cost and profit over a slice of sales. Margin is
// utilidad / ingresos × 100 and zero when there is no revenue.
func Agregar(ventas []model.Venta) (ingresos, costos, utilidad, margen decimal.Decimal) {
	for _, v := range ventas {
		ingresos = ingresos.Add(v.Total)
		costos = costos.Add(v.TotalCosto)
	}
	utilidad = ingresos.Sub(costos)
	if ingresos.IsPositive() {
		margen = utilidad.Div(ingresos).Mul(decimal.NewFromInt(100))
	}
	return ingresos, costos, utilidad, margen
}

func (s *reporteService) Resumen(ctx context.Context, filter dto.ReporteFilter) (*dto.ResumenResponse, error) {
	ventas := FiltrarPorPeriodo(s.ventas.List(), Periodo(filter.Periodo), s.ahora())
	ingresos, costos, utilidad, margen := Agregar(ventas)
	return &dto.ResumenResponse{
		Periodo:   filter.Periodo,
		Pedidos:   len(ventas),
		Ingresos:  ingresos,
		Costos:    costos,
		Utilidad:  utilidad,
		MargenPct: margen,
	}, nil
}

// PorCategoria accumulates every line of every sale into the bucket of the
// category recorded on the line snapshot — not the product's current category,
// so past sales keep their history even after a product is recategorized.
func (s *reporteService) PorCategoria(ctx context.Context, filter dto.ReporteFilter) ([]dto.CategoriaResponse, error) {
	ventas := FiltrarPorPeriodo(s.ventas.List(), Periodo(filter.Periodo), s.ahora())

	type bucket struct {
		ventas decimal.Decimal
		costos decimal.Decimal
	}
	buckets := make(map[model.Categoria]*bucket)
	var orden []model.Categoria

	for _, v := range ventas {
		for _, it := range v.Items {
			b, ok := buckets[it.Categoria]
			if !ok {
				b = &bucket{}
				buckets[it.Categoria] = b
				orden = append(orden, it.Categoria)
			}
			b.ventas = b.ventas.Add(it.Subtotal())
			b.costos = b.costos.Add(it.SubtotalCosto())
		}
	}

	out := make([]dto.CategoriaResponse, 0, len(orden))
	for _, cat := range orden {
		b := buckets[cat]
		out = append(out, dto.CategoriaResponse{
			Categoria: string(cat),
			Ventas:    b.ventas,
			Utilidad:  b.ventas.Sub(b.costos),
		})
	}
	return out, nil
}

// MasRentables ranks catalog products by per-unit profit, descending. The sort
// is stable so ties keep catalog order.
func (s *reporteService) MasRentables(ctx context.Context, limit int) ([]dto.RentableResponse, error) {
	productos := s.catalogo.List(store.FiltroCatalogo{})
	sort.SliceStable(productos, func(i, j int) bool {
		return productos[i].UtilidadUnitaria().GreaterThan(productos[j].UtilidadUnitaria())
	})
	if limit > 0 && limit < len(productos) {
		productos = productos[:limit]
	}

	out := make([]dto.RentableResponse, 0, len(productos))
	for i, p := range productos {
		out = append(out, dto.RentableResponse{
			Puesto:           i + 1,
			ProductoID:       p.ID.String(),
			Nombre:           p.Nombre,
			UtilidadUnitaria: p.UtilidadUnitaria(),
		})
	}
	return out, nil
}

// Dashboard assembles the operational summary: windowed sales totals, the
// count of products at or below the critical stock threshold and the latest
// cached AI advice.
func (s *reporteService) Dashboard(ctx context.Context, filter dto.ReporteFilter) (*dto.DashboardResponse, error) {
	ventas := FiltrarPorPeriodo(s.ventas.List(), Periodo(filter.Periodo), s.ahora())
	ingresos, _, utilidad, _ := Agregar(ventas)

	criticos := 0
	for _, p := range s.catalogo.List(store.FiltroCatalogo{}) {
		if p.Stock.LessThanOrEqual(stockCritico) {
			criticos++
		}
	}

	return &dto.DashboardResponse{
		Periodo:      filter.Periodo,
		Ventas:       ingresos,
		Pedidos:      len(ventas),
		StockCritico: criticos,
		Utilidad:     utilidad,
		ConsejoIA:    s.consejo.Actual(),
	}, nil
}

// ── CSV exports ──────────────────────────────────────────────────────────────

// VentasCSV renders the filtered sale history as the management report:
// one row per invoice with totals, cost and gross profit.
func (s *reporteService) VentasCSV(ctx context.Context, filter dto.ReporteFilter) ([]byte, error) {
	ventas := FiltrarPorPeriodo(s.ventas.List(), Periodo(filter.Periodo), s.ahora())

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"ID Factura", "Fecha", "Cliente", "Total Venta", "Costo Total", "Utilidad Bruta"}); err != nil {
		return nil, err
	}
	for _, v := range ventas {
		row := []string{
			v.ID.String(),
			v.Fecha.Format("2006-01-02"),
			v.ClienteNombre,
			v.Total.String(),
			v.TotalCosto.String(),
			v.Utilidad().String(),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// InventarioCSV renders the catalog state with a trailing totals block for the
// invested cost and the expected sale value of the whole inventory.
func (s *reporteService) InventarioCSV(ctx context.Context) ([]byte, error) {
	productos := s.catalogo.List(store.FiltroCatalogo{})

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"ID", "Producto", "Categoria", "Precio Costo", "Precio Venta", "Unidad", "Stock Actual", "Valor Venta Total"}); err != nil {
		return nil, err
	}

	costoTotal := decimal.Zero
	ventaTotal := decimal.Zero
	for _, p := range productos {
		valorVenta := p.PrecioVenta.Mul(p.Stock)
		costoTotal = costoTotal.Add(p.PrecioCosto.Mul(p.Stock))
		ventaTotal = ventaTotal.Add(valorVenta)
		row := []string{
			p.ID.String(),
			p.Nombre,
			string(p.Categoria),
			p.PrecioCosto.String(),
			p.PrecioVenta.String(),
			string(p.Unidad),
			p.Stock.String(),
			valorVenta.String(),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	blanco := []string{"", "", "", "", "", "", "", ""}
	filas := [][]string{
		blanco,
		{"", "", "", "", "", "", "TOTAL COSTO (INVERSION):", costoTotal.String()},
		{"", "", "", "", "", "", "TOTAL VENTA (ESPERADO):", ventaTotal.String()},
	}
	for _, row := range filas {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
