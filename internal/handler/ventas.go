package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/apierror"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/dto"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/infra"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/model"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/service"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/store"
)

type VentasHandler struct {
	svc      service.VentaService
	ventas   *store.VentaStore
	clientes *store.ClienteStore
	negocio  infra.Negocio
}

func NewVentasHandler(svc service.VentaService, ventas *store.VentaStore, clientes *store.ClienteStore, negocio infra.Negocio) *VentasHandler {
	return &VentasHandler{svc: svc, ventas: ventas, clientes: clientes, negocio: negocio}
}

func (h *VentasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *VentasHandler) Listar(c *gin.Context) {
	var filter dto.VentaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar ventas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VentasHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VentasHandler) CorregirFecha(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.CorregirFechaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CorregirFecha(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Factura streams the 74 mm thermal-format invoice PDF for one sale.
func (h *VentasHandler) Factura(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	venta, err := h.ventas.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	// The sale keeps the customer snapshot by id; fall back to walk-in data
	// if the customer record is somehow gone.
	cliente, err := h.clientes.Get(venta.ClienteID)
	if err != nil {
		cliente = model.Cliente{Nombre: venta.ClienteNombre}
	}

	pdf, err := infra.GenerateFacturaPDF(h.negocio, venta, cliente)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar la factura"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="factura_`+venta.ID.String()[:8]+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// MensajeWhatsApp returns the preformatted invoice text and wa.me link.
func (h *VentasHandler) MensajeWhatsApp(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	venta, err := h.ventas.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	mensaje, enlace := infra.MensajeWhatsApp(h.negocio, venta)
	c.JSON(http.StatusOK, dto.MensajeWhatsAppResponse{Mensaje: mensaje, URL: enlace})
}
