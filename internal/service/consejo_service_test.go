package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/model"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/store"
)

type stubProvider struct {
	consejo  string
	err      error
	llamadas int
	ventas   int
}

func (p *stubProvider) ConsejoInventario(_ context.Context, _ []model.Producto, ventas []model.Venta) (string, error) {
	p.llamadas++
	p.ventas = len(ventas)
	return p.consejo, p.err
}

func TestConsejoInicialHastaPrimerRefresco(t *testing.T) {
	svc := NewConsejoService(nil, store.NewCatalogoStore(), store.NewVentaStore())
	assert.Equal(t, "Analizando inventario...", svc.Actual())
}

func TestRefrescarSinProveedorEsNoOp(t *testing.T) {
	svc := NewConsejoService(nil, store.NewCatalogoStore(), store.NewVentaStore())
	svc.Refrescar(context.Background())
	assert.Equal(t, "Analizando inventario...", svc.Actual())
}

func TestRefrescarCacheaElConsejo(t *testing.T) {
	provider := &stubProvider{consejo: "Reponer pechuga de pollo esta semana."}
	svc := NewConsejoService(provider, store.NewCatalogoStore(), store.NewVentaStore())

	svc.Refrescar(context.Background())
	assert.Equal(t, "Reponer pechuga de pollo esta semana.", svc.Actual())
	assert.Equal(t, 1, provider.llamadas)
}

func TestRefrescarDegradaAlFallback(t *testing.T) {
	provider := &stubProvider{err: errors.New("timeout")}
	svc := NewConsejoService(provider, store.NewCatalogoStore(), store.NewVentaStore())

	svc.Refrescar(context.Background())
	assert.Equal(t, ConsejoFallback, svc.Actual())

	// una respuesta vacia tambien degrada
	provider.err = nil
	provider.consejo = ""
	svc.Refrescar(context.Background())
	assert.Equal(t, ConsejoFallback, svc.Actual())
}

func TestRefrescarMandaSoloUltimasCincoVentas(t *testing.T) {
	ventas := store.NewVentaStore()
	for i := 0; i < 8; i++ {
		ventas.Append(ventaEn(time.Now(), 38000, 30000, model.CategoriaRes))
	}
	provider := &stubProvider{consejo: "ok"}
	svc := NewConsejoService(provider, store.NewCatalogoStore(), ventas)

	svc.Refrescar(context.Background())
	require.Equal(t, 1, provider.llamadas)
	assert.Equal(t, 5, provider.ventas)
}
