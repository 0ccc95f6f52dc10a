package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/model"
)

func nuevoProducto(nombre string, categoria model.Categoria, costo, venta, stock int64) model.Producto {
	return model.Producto{
		Nombre:      nombre,
		Categoria:   categoria,
		PrecioCosto: decimal.NewFromInt(costo),
		PrecioVenta: decimal.NewFromInt(venta),
		Unidad:      model.UnidadKg,
		Stock:       decimal.NewFromInt(stock),
	}
}

// ── List / filters ───────────────────────────────────────────────────────────

func TestListRespetaOrdenDeInsercion(t *testing.T) {
	s := NewCatalogoStore()
	s.Crear(nuevoProducto("Lomo Fino Res", model.CategoriaRes, 30000, 38000, 45))
	s.Crear(nuevoProducto("Costilla de Cerdo", model.CategoriaCerdo, 18000, 24000, 60))
	s.Crear(nuevoProducto("Pechuga de Pollo", model.CategoriaPollo, 14000, 18000, 100))

	out := s.List(FiltroCatalogo{})
	require.Len(t, out, 3)
	assert.Equal(t, "Lomo Fino Res", out[0].Nombre)
	assert.Equal(t, "Costilla de Cerdo", out[1].Nombre)
	assert.Equal(t, "Pechuga de Pollo", out[2].Nombre)
}

func TestListFiltraNombreYCategoria(t *testing.T) {
	s := NewCatalogoStore()
	s.Crear(nuevoProducto("Lomo Fino Res", model.CategoriaRes, 30000, 38000, 45))
	s.Crear(nuevoProducto("Muchacho de Res", model.CategoriaRes, 22000, 28000, 25))
	s.Crear(nuevoProducto("Costilla de Cerdo", model.CategoriaCerdo, 18000, 24000, 60))

	// substring match is case-insensitive
	out := s.List(FiltroCatalogo{Nombre: "lomo"})
	require.Len(t, out, 1)
	assert.Equal(t, "Lomo Fino Res", out[0].Nombre)

	// both filters AND together
	out = s.List(FiltroCatalogo{Nombre: "de", Categoria: "Res"})
	require.Len(t, out, 1)
	assert.Equal(t, "Muchacho de Res", out[0].Nombre)

	// "Todas" disables the category filter
	out = s.List(FiltroCatalogo{Categoria: "Todas"})
	assert.Len(t, out, 3)

	out = s.List(FiltroCatalogo{Nombre: "no existe"})
	assert.Empty(t, out)
}

// ── Stock deltas ─────────────────────────────────────────────────────────────

func TestAplicarDeltaStockNuncaNegativo(t *testing.T) {
	s := NewCatalogoStore()
	p := s.Crear(nuevoProducto("Alas de Pollo", model.CategoriaPollo, 8500, 12000, 5))

	require.NoError(t, s.AplicarDeltaStock(p.ID, decimal.NewFromInt(-8)))

	got, err := s.Get(p.ID)
	require.NoError(t, err)
	assert.True(t, got.Stock.IsZero(), "stock debe quedar en cero, no negativo")
}

func TestAplicarDeltaStockProductoDesconocido(t *testing.T) {
	s := NewCatalogoStore()
	err := s.AplicarDeltaStock(uuid.New(), decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrProductoNoEncontrado)
}

// ── DescontarLote ────────────────────────────────────────────────────────────

func TestDescontarLoteDescuentaTodasLasLineas(t *testing.T) {
	s := NewCatalogoStore()
	a := s.Crear(nuevoProducto("Lomo Fino Res", model.CategoriaRes, 30000, 38000, 45))
	b := s.Crear(nuevoProducto("Costilla de Cerdo", model.CategoriaCerdo, 18000, 24000, 60))

	err := s.DescontarLote([]LineaDescuento{
		{ProductoID: a.ID, Nombre: a.Nombre, Cantidad: decimal.NewFromInt(1)},
		{ProductoID: b.ID, Nombre: b.Nombre, Cantidad: decimal.NewFromFloat(2.5)},
	})
	require.NoError(t, err)

	pa, _ := s.Get(a.ID)
	pb, _ := s.Get(b.ID)
	assert.True(t, pa.Stock.Equal(decimal.NewFromInt(44)))
	assert.True(t, pb.Stock.Equal(decimal.NewFromFloat(57.5)))
}

func TestDescontarLoteEsAtomico(t *testing.T) {
	s := NewCatalogoStore()
	a := s.Crear(nuevoProducto("Lomo Fino Res", model.CategoriaRes, 30000, 38000, 45))
	b := s.Crear(nuevoProducto("Bondiola de Cerdo", model.CategoriaCerdo, 20000, 26000, 15))

	// second line exceeds stock: the first line must NOT be decremented
	err := s.DescontarLote([]LineaDescuento{
		{ProductoID: a.ID, Nombre: a.Nombre, Cantidad: decimal.NewFromInt(1)},
		{ProductoID: b.ID, Nombre: b.Nombre, Cantidad: decimal.NewFromInt(50)},
	})

	var stockErr *StockInsuficienteError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Bondiola de Cerdo", stockErr.Producto)
	assert.True(t, stockErr.Disponible.Equal(decimal.NewFromInt(15)))
	assert.True(t, stockErr.Solicitado.Equal(decimal.NewFromInt(50)))

	pa, _ := s.Get(a.ID)
	pb, _ := s.Get(b.ID)
	assert.True(t, pa.Stock.Equal(decimal.NewFromInt(45)), "linea valida no debe descontarse")
	assert.True(t, pb.Stock.Equal(decimal.NewFromInt(15)))
}

func TestDescontarLoteProductoEliminadoCuentaComoCero(t *testing.T) {
	s := NewCatalogoStore()

	err := s.DescontarLote([]LineaDescuento{
		{ProductoID: uuid.New(), Nombre: "Fantasma", Cantidad: decimal.NewFromInt(1)},
	})

	var stockErr *StockInsuficienteError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Fantasma", stockErr.Producto)
	assert.True(t, stockErr.Disponible.IsZero())
}

func TestDescontarLoteReportaPrimeraLineaOfensora(t *testing.T) {
	s := NewCatalogoStore()
	a := s.Crear(nuevoProducto("Punta de Anca", model.CategoriaRes, 25000, 32000, 3))
	b := s.Crear(nuevoProducto("Chorizo Santarrosano", model.CategoriaEmbutidos, 10000, 15000, 2))

	err := s.DescontarLote([]LineaDescuento{
		{ProductoID: a.ID, Nombre: a.Nombre, Cantidad: decimal.NewFromInt(10)},
		{ProductoID: b.ID, Nombre: b.Nombre, Cantidad: decimal.NewFromInt(10)},
	})

	var stockErr *StockInsuficienteError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Punta de Anca", stockErr.Producto)
}

// ── ReemplazarProducto ───────────────────────────────────────────────────────

func TestReemplazarProductoDesconocidoFalla(t *testing.T) {
	s := NewCatalogoStore()
	err := s.ReemplazarProducto(nuevoProducto("Nuevo", model.CategoriaOtros, 1, 2, 3))
	assert.ErrorIs(t, err, ErrProductoNoEncontrado)
}
