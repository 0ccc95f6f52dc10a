package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MetodoPago is the payment method recorded on a sale.
type MetodoPago string

const (
	PagoEfectivo      MetodoPago = "Efectivo"
	PagoTarjeta       MetodoPago = "Tarjeta"
	PagoTransferencia MetodoPago = "Transferencia"
)

func (m MetodoPago) Valido() bool {
	return m == PagoEfectivo || m == PagoTarjeta || m == PagoTransferencia
}

// ItemVenta is the immutable line snapshot stored on a committed sale.
// It records the price override and the cost at commit time so that later
// catalog edits can never change a historical sale.
type ItemVenta struct {
	ProductoID     uuid.UUID
	Nombre         string
	Categoria      Categoria
	Unidad         Unidad
	PrecioUnitario decimal.Decimal
	PrecioCosto    decimal.Decimal
	Cantidad       decimal.Decimal
}

func (i ItemVenta) Subtotal() decimal.Decimal {
	return i.PrecioUnitario.Mul(i.Cantidad)
}

func (i ItemVenta) SubtotalCosto() decimal.Decimal {
	return i.PrecioCosto.Mul(i.Cantidad)
}

// Venta is a committed, historical sale. Everything except Fecha is immutable
// after commit; Fecha may be rewritten through the explicit date-correction
// operation only.
type Venta struct {
	ID            uuid.UUID
	Items         []ItemVenta
	Total         decimal.Decimal
	TotalCosto    decimal.Decimal
	Fecha         time.Time
	ClienteID     uuid.UUID
	ClienteNombre string
	MetodoPago    MetodoPago
}

// Utilidad is the gross profit of the sale.
func (v Venta) Utilidad() decimal.Decimal {
	return v.Total.Sub(v.TotalCosto)
}

// Clone returns a deep copy so callers cannot mutate stored history.
func (v Venta) Clone() Venta {
	out := v
	out.Items = make([]ItemVenta, len(v.Items))
	copy(out.Items, v.Items)
	return out
}
