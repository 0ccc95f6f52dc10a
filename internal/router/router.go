package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/config"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/handler"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/infra"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/middleware"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/service"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/store"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/worker"
)

// Stores groups the in-memory state shared by every request.
type Stores struct {
	Catalogo *store.CatalogoStore
	Ventas   *store.VentaStore
	Clientes *store.ClienteStore
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Store
func New(cfg *config.Config, stores Stores, consejoSvc *service.ConsejoService, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	negocio := infra.Negocio{
		Nombre: cfg.NegocioNombre,
		NIT:    cfg.NegocioNIT,
		Ciudad: cfg.NegocioCiudad,
	}

	// ── Services ─────────────────────────────────────────────────────────────
	carritoSvc := service.NewCarritoService(stores.Catalogo)
	productoSvc := service.NewProductoService(stores.Catalogo)
	inventarioSvc := service.NewInventarioService(stores.Catalogo)
	clienteSvc := service.NewClienteService(stores.Clientes)
	ventaSvc := service.NewVentaService(carritoSvc, stores.Catalogo, stores.Ventas, stores.Clientes, dispatcher)
	reporteSvc := service.NewReporteService(stores.Catalogo, stores.Ventas, consejoSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productosH := handler.NewProductosHandler(productoSvc)
	carritoH := handler.NewCarritoHandler(carritoSvc)
	ventasH := handler.NewVentasHandler(ventaSvc, stores.Ventas, stores.Clientes, negocio)
	clientesH := handler.NewClientesHandler(clienteSvc)
	inventarioH := handler.NewInventarioHandler(inventarioSvc, reporteSvc, stores.Catalogo, negocio)
	reportesH := handler.NewReportesHandler(reporteSvc, stores.Ventas, negocio)
	dashboardH := handler.NewDashboardHandler(reporteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(stores.Catalogo, stores.Ventas))

	v1 := r.Group("/v1")
	{
		v1.GET("/productos", productosH.Listar)
		v1.GET("/productos/:id", productosH.ObtenerPorID)
		v1.PUT("/productos/:id", productosH.Actualizar)
		v1.PATCH("/productos/:id/stock", productosH.AjustarStock)

		v1.GET("/carrito", carritoH.Ver)
		v1.POST("/carrito/items", carritoH.Agregar)
		v1.PATCH("/carrito/items/:producto_id", carritoH.Actualizar)
		v1.DELETE("/carrito/items/:producto_id", carritoH.Quitar)
		v1.DELETE("/carrito", carritoH.Limpiar)

		v1.POST("/ventas", ventasH.Registrar)
		v1.GET("/ventas", ventasH.Listar)
		v1.GET("/ventas/:id", ventasH.Obtener)
		v1.PATCH("/ventas/:id/fecha", ventasH.CorregirFecha)
		v1.GET("/ventas/:id/factura.pdf", ventasH.Factura)
		v1.GET("/ventas/:id/whatsapp", ventasH.MensajeWhatsApp)

		v1.POST("/clientes", clientesH.Registrar)
		v1.GET("/clientes", clientesH.Listar)

		v1.POST("/inventario/recepciones", inventarioH.RecibirMercancia)
		v1.GET("/inventario/export.csv", inventarioH.ExportarCSV)
		v1.GET("/inventario/reporte.pdf", inventarioH.ReportePDF)

		v1.GET("/reportes/resumen", reportesH.Resumen)
		v1.GET("/reportes/categorias", reportesH.PorCategoria)
		v1.GET("/reportes/rentables", reportesH.MasRentables)
		v1.GET("/reportes/ventas/export.csv", reportesH.VentasCSV)
		v1.GET("/reportes/ventas/reporte.pdf", reportesH.VentasPDF)

		v1.GET("/dashboard", dashboardH.Obtener)
	}

	return r
}
