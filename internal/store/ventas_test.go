package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/model"
)

func ventaDeEjemplo() model.Venta {
	return model.Venta{
		ID: uuid.New(),
		Items: []model.ItemVenta{{
			ProductoID:     uuid.New(),
			Nombre:         "Lomo Fino Res",
			Categoria:      model.CategoriaRes,
			Unidad:         model.UnidadKg,
			PrecioUnitario: decimal.NewFromInt(38000),
			PrecioCosto:    decimal.NewFromInt(30000),
			Cantidad:       decimal.NewFromInt(1),
		}},
		Total:         decimal.NewFromInt(38000),
		TotalCosto:    decimal.NewFromInt(30000),
		Fecha:         time.Now(),
		ClienteNombre: "CONSUMIDOR FINAL",
		MetodoPago:    model.PagoEfectivo,
	}
}

func TestAppendYGet(t *testing.T) {
	s := NewVentaStore()
	v := ventaDeEjemplo()
	s.Append(v)

	got, err := s.Get(v.ID)
	require.NoError(t, err)
	assert.Equal(t, v.ID, got.ID)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(38000)))
	assert.Equal(t, 1, s.Count())
}

func TestGetDevuelveCopiaProfunda(t *testing.T) {
	s := NewVentaStore()
	v := ventaDeEjemplo()
	s.Append(v)

	got, err := s.Get(v.ID)
	require.NoError(t, err)
	got.Items[0].Nombre = "MUTADO"
	got.Total = decimal.Zero

	fresco, err := s.Get(v.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lomo Fino Res", fresco.Items[0].Nombre)
	assert.True(t, fresco.Total.Equal(decimal.NewFromInt(38000)))
}

func TestListConservaOrdenDeCommit(t *testing.T) {
	s := NewVentaStore()
	a := ventaDeEjemplo()
	b := ventaDeEjemplo()
	s.Append(a)
	s.Append(b)

	out := s.List()
	require.Len(t, out, 2)
	assert.Equal(t, a.ID, out[0].ID)
	assert.Equal(t, b.ID, out[1].ID)
}

func TestActualizarFecha(t *testing.T) {
	s := NewVentaStore()
	v := ventaDeEjemplo()
	s.Append(v)

	nueva := time.Date(2026, 3, 15, 10, 30, 0, 0, time.Local)
	require.NoError(t, s.ActualizarFecha(v.ID, nueva))

	got, err := s.Get(v.ID)
	require.NoError(t, err)
	assert.True(t, got.Fecha.Equal(nueva))

	assert.ErrorIs(t, s.ActualizarFecha(uuid.New(), nueva), ErrVentaNoEncontrada)
}
