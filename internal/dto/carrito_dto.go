package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AgregarItemRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
}

// ActualizarItemRequest patches a cart line. Cantidad below 1 clamps to 1;
// Precio is accepted as-is (the override is intentionally unvalidated).
type ActualizarItemRequest struct {
	Cantidad *decimal.Decimal `json:"cantidad"`
	Precio   *decimal.Decimal `json:"precio"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemCarritoResponse struct {
	ProductoID     string          `json:"producto_id"`
	Nombre         string          `json:"nombre"`
	Categoria      string          `json:"categoria"`
	Unidad         string          `json:"unidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type CarritoResponse struct {
	Items      []ItemCarritoResponse `json:"items"`
	Total      decimal.Decimal       `json:"total"`
	TotalCosto decimal.Decimal       `json:"total_costo"`
}
