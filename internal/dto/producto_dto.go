package dto

import "github.com/shopspring/decimal"

// ─── Filter ──────────────────────────────────────────────────────────────────

// ProductoFilter is bound from the query string of GET /v1/productos.
type ProductoFilter struct {
	Nombre    string `form:"nombre"`
	Categoria string `form:"categoria"` // exact match; empty or "Todas" = all
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ActualizarProductoRequest replaces every mutable field of a product.
// The id comes from the path and is immutable.
type ActualizarProductoRequest struct {
	Nombre      string          `json:"nombre"       validate:"required,min=2,max=120"`
	Categoria   string          `json:"categoria"    validate:"required"`
	PrecioCosto decimal.Decimal `json:"precio_costo" validate:"min=0"`
	PrecioVenta decimal.Decimal `json:"precio_venta" validate:"min=0"`
	Unidad      string          `json:"unidad"       validate:"required,oneof=kg lb unidad"`
	Stock       decimal.Decimal `json:"stock"        validate:"min=0"`
	ImagenURL   string          `json:"imagen_url"`
}

type AjustarStockRequest struct {
	Delta decimal.Decimal `json:"delta" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Categoria   string          `json:"categoria"`
	PrecioCosto decimal.Decimal `json:"precio_costo"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	MargenPct   decimal.Decimal `json:"margen_pct"`
	Unidad      string          `json:"unidad"`
	Stock       decimal.Decimal `json:"stock"`
	ImagenURL   string          `json:"imagen_url,omitempty"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int                `json:"total"`
}
