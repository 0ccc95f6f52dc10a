package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Categoria is the fixed set of product categories of the shop.
type Categoria string

const (
	CategoriaRes       Categoria = "Res"
	CategoriaCerdo     Categoria = "Cerdo"
	CategoriaPollo     Categoria = "Pollo"
	CategoriaEmbutidos Categoria = "Embutidos"
	CategoriaOtros     Categoria = "Otros"
)

// Categorias lists every valid category in display order.
var Categorias = []Categoria{
	CategoriaRes,
	CategoriaCerdo,
	CategoriaPollo,
	CategoriaEmbutidos,
	CategoriaOtros,
}

// Valida reports whether c is one of the known categories.
func (c Categoria) Valida() bool {
	for _, v := range Categorias {
		if c == v {
			return true
		}
	}
	return false
}

// Unidad is the unit of measure a product is sold in.
type Unidad string

const (
	UnidadKg     Unidad = "kg"
	UnidadLb     Unidad = "lb"
	UnidadUnidad Unidad = "unidad"
)

func (u Unidad) Valida() bool {
	return u == UnidadKg || u == UnidadLb || u == UnidadUnidad
}

// Producto is a catalog entry with its current stock level.
// Stock is decimal because meat is sold by fractional kilos.
type Producto struct {
	ID          uuid.UUID
	Nombre      string
	Categoria   Categoria
	PrecioCosto decimal.Decimal
	PrecioVenta decimal.Decimal
	Unidad      Unidad
	Stock       decimal.Decimal
	ImagenURL   string
}

// UtilidadUnitaria is the per-unit gross profit (sale price minus cost).
func (p Producto) UtilidadUnitaria() decimal.Decimal {
	return p.PrecioVenta.Sub(p.PrecioCosto)
}

// MargenPct returns (venta − costo) / venta × 100, or zero when venta is zero.
func (p Producto) MargenPct() decimal.Decimal {
	if p.PrecioVenta.IsZero() {
		return decimal.Zero
	}
	return p.UtilidadUnitaria().Div(p.PrecioVenta).Mul(decimal.NewFromInt(100))
}
