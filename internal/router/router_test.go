package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/config"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/service"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/store"
)

func engineDePrueba(t *testing.T) (*gin.Engine, Stores) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	stores := Stores{
		Catalogo: store.NewCatalogoStore(),
		Ventas:   store.NewVentaStore(),
		Clientes: store.NewClienteStore(),
	}
	store.SeedCatalogo(stores.Catalogo)

	cfg := &config.Config{
		Env:           "test",
		NegocioNombre: "SUPER CARNES",
		NegocioNIT:    "900.555.222-1",
		NegocioCiudad: "Cali, Colombia",
	}
	consejoSvc := service.NewConsejoService(nil, stores.Catalogo, stores.Ventas)
	return New(cfg, stores, consejoSvc, nil), stores
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFlujoCompletoDeVenta(t *testing.T) {
	r, stores := engineDePrueba(t)

	lomo := stores.Catalogo.List(store.FiltroCatalogo{Nombre: "Lomo Fino"})[0]

	// agregar al carrito
	w := doJSON(t, r, http.MethodPost, "/v1/carrito/items", `{"producto_id":"`+lomo.ID.String()+`"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// commit
	w = doJSON(t, r, http.MethodPost, "/v1/ventas", `{}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var venta struct {
		ID            string `json:"id"`
		Total         string `json:"total"`
		ClienteNombre string `json:"cliente_nombre"`
		MetodoPago    string `json:"metodo_pago"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &venta))
	assert.Equal(t, "38000", venta.Total)
	assert.Equal(t, "CONSUMIDOR FINAL", venta.ClienteNombre)
	assert.Equal(t, "Efectivo", venta.MetodoPago)

	// stock decrementado
	w = doJSON(t, r, http.MethodGet, "/v1/productos/"+lomo.ID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)
	var producto struct {
		Stock string `json:"stock"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &producto))
	assert.Equal(t, "44", producto.Stock)

	// carrito limpio
	w = doJSON(t, r, http.MethodGet, "/v1/carrito", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"items":[]`)

	// mensaje de whatsapp disponible
	w = doJSON(t, r, http.MethodGet, "/v1/ventas/"+venta.ID+"/whatsapp", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "wa.me")

	// factura en PDF
	w = doJSON(t, r, http.MethodGet, "/v1/ventas/"+venta.ID+"/factura.pdf", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
}

func TestVentaConCarritoVacioFalla(t *testing.T) {
	r, _ := engineDePrueba(t)

	w := doJSON(t, r, http.MethodPost, "/v1/ventas", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "detail")
}

func TestVentaSinStockDevuelveConflicto(t *testing.T) {
	r, stores := engineDePrueba(t)
	lomo := stores.Catalogo.List(store.FiltroCatalogo{Nombre: "Lomo Fino"})[0] // stock 45

	w := doJSON(t, r, http.MethodPost, "/v1/carrito/items", `{"producto_id":"`+lomo.ID.String()+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPatch, "/v1/carrito/items/"+lomo.ID.String(), `{"cantidad":"50"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/v1/ventas", `{}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "stock insuficiente")

	// nada quedo registrado
	w = doJSON(t, r, http.MethodGet, "/v1/ventas", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":0`)
}

func TestExportaCSVDeInventario(t *testing.T) {
	r, _ := engineDePrueba(t)

	w := doJSON(t, r, http.MethodGet, "/v1/inventario/export.csv", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Body.String(), "TOTAL COSTO (INVERSION):")
}

func TestDashboardTraeConsejoInicial(t *testing.T) {
	r, _ := engineDePrueba(t)

	w := doJSON(t, r, http.MethodGet, "/v1/dashboard?periodo=dia", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Analizando inventario...")
}
