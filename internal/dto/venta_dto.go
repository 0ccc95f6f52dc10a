package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// RegistrarVentaRequest commits the current cart. ClienteID empty = walk-in.
type RegistrarVentaRequest struct {
	ClienteID  string `json:"cliente_id"  validate:"omitempty,uuid"`
	MetodoPago string `json:"metodo_pago" validate:"omitempty,oneof=Efectivo Tarjeta Transferencia"`
}

// CorregirFechaRequest rewrites the timestamp of an existing sale.
// Accepted layouts: RFC 3339 and the datetime-local form "2006-01-02T15:04".
type CorregirFechaRequest struct {
	Fecha string `json:"fecha" validate:"required"`
}

// VentaFilter is bound from the query string of GET /v1/ventas.
type VentaFilter struct {
	Periodo string `form:"periodo,default=todo" validate:"omitempty,oneof=dia semana mes anio todo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemVentaResponse struct {
	ProductoID     string          `json:"producto_id"`
	Nombre         string          `json:"nombre"`
	Categoria      string          `json:"categoria"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type VentaResponse struct {
	ID            string              `json:"id"`
	Items         []ItemVentaResponse `json:"items"`
	Total         decimal.Decimal     `json:"total"`
	TotalCosto    decimal.Decimal     `json:"total_costo"`
	Utilidad      decimal.Decimal     `json:"utilidad"`
	Fecha         string              `json:"fecha"`
	ClienteID     string              `json:"cliente_id"`
	ClienteNombre string              `json:"cliente_nombre"`
	MetodoPago    string              `json:"metodo_pago"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int             `json:"total"`
}

// MensajeWhatsAppResponse carries the preformatted invoice text and the
// wa.me link the cashier opens to send it.
type MensajeWhatsAppResponse struct {
	Mensaje string `json:"mensaje"`
	URL     string `json:"url"`
}
