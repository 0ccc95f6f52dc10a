package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/store"
)

func TestRecibirMercanciaSumaStock(t *testing.T) {
	catalogo := catalogoConSemilla(t)
	svc := NewInventarioService(catalogo)
	lomo := productoPorNombre(t, catalogo, "Lomo Fino Res") // stock 45

	resp, err := svc.RecibirMercancia(context.Background(), lomo.ID, decimal.NewFromFloat(12.5))
	require.NoError(t, err)
	assert.True(t, resp.Stock.Equal(decimal.NewFromFloat(57.5)))
}

func TestRecibirMercanciaExigeCantidadPositiva(t *testing.T) {
	catalogo := catalogoConSemilla(t)
	svc := NewInventarioService(catalogo)
	lomo := productoPorNombre(t, catalogo, "Lomo Fino Res")

	_, err := svc.RecibirMercancia(context.Background(), lomo.ID, decimal.Zero)
	assert.ErrorIs(t, err, ErrCantidadInvalida)

	_, err = svc.RecibirMercancia(context.Background(), lomo.ID, decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, ErrCantidadInvalida)

	// stock untouched on failure
	despues, _ := catalogo.Get(lomo.ID)
	assert.True(t, despues.Stock.Equal(decimal.NewFromInt(45)))
}

func TestRecibirMercanciaProductoDesconocido(t *testing.T) {
	svc := NewInventarioService(store.NewCatalogoStore())
	_, err := svc.RecibirMercancia(context.Background(), uuid.New(), decimal.NewFromInt(1))
	assert.ErrorIs(t, err, store.ErrProductoNoEncontrado)
}
