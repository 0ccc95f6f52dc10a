package dto

import "github.com/shopspring/decimal"

// ─── Filters ─────────────────────────────────────────────────────────────────

// ReporteFilter selects the reporting window.
type ReporteFilter struct {
	Periodo string `form:"periodo,default=dia" validate:"omitempty,oneof=dia semana mes anio todo"`
}

type RentablesFilter struct {
	Limit int `form:"limit,default=5" validate:"min=1,max=50"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RecibirMercanciaRequest struct {
	ProductoID string          `json:"producto_id" validate:"required,uuid"`
	Cantidad   decimal.Decimal `json:"cantidad"    validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// ResumenResponse aggregates a filtered slice of the sale history.
type ResumenResponse struct {
	Periodo  string          `json:"periodo"`
	Pedidos  int             `json:"pedidos"`
	Ingresos decimal.Decimal `json:"ingresos"`
	Costos   decimal.Decimal `json:"costos"`
	Utilidad decimal.Decimal `json:"utilidad"`
	// MargenPct = utilidad / ingresos × 100, zero when there are no ingresos.
	MargenPct decimal.Decimal `json:"margen_pct"`
}

// CategoriaResponse is one bucket of the per-category breakdown, keyed by the
// category recorded on each line snapshot at sale time.
type CategoriaResponse struct {
	Categoria string          `json:"categoria"`
	Ventas    decimal.Decimal `json:"ventas"`
	Utilidad  decimal.Decimal `json:"utilidad"`
}

// RentableResponse is one row of the top-profitable-products ranking.
type RentableResponse struct {
	Puesto           int             `json:"puesto"`
	ProductoID       string          `json:"producto_id"`
	Nombre           string          `json:"nombre"`
	UtilidadUnitaria decimal.Decimal `json:"utilidad_unitaria"`
}

// DashboardResponse backs the operational summary screen.
type DashboardResponse struct {
	Periodo      string          `json:"periodo"`
	Ventas       decimal.Decimal `json:"ventas"`
	Pedidos      int             `json:"pedidos"`
	StockCritico int             `json:"stock_critico"`
	Utilidad     decimal.Decimal `json:"utilidad"`
	ConsejoIA    string          `json:"consejo_ia"`
}
