package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemCarrito is one line of the pending sale. Nombre, Categoria, Unidad and
// PrecioCosto are snapshotted from the product at add time; PrecioUnitario
// starts at the product's sale price and may be overridden per line without
// writing back to the catalog.
type ItemCarrito struct {
	ProductoID     uuid.UUID
	Nombre         string
	Categoria      Categoria
	Unidad         Unidad
	PrecioUnitario decimal.Decimal
	PrecioCosto    decimal.Decimal
	Cantidad       decimal.Decimal
}

func (i ItemCarrito) Subtotal() decimal.Decimal {
	return i.PrecioUnitario.Mul(i.Cantidad)
}

func (i ItemCarrito) SubtotalCosto() decimal.Decimal {
	return i.PrecioCosto.Mul(i.Cantidad)
}

// NuevoItemCarrito builds a fresh line at quantity 1 from a catalog product.
func NuevoItemCarrito(p Producto) ItemCarrito {
	return ItemCarrito{
		ProductoID:     p.ID,
		Nombre:         p.Nombre,
		Categoria:      p.Categoria,
		Unidad:         p.Unidad,
		PrecioUnitario: p.PrecioVenta,
		PrecioCosto:    p.PrecioCosto,
		Cantidad:       decimal.NewFromInt(1),
	}
}
