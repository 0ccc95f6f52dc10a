package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/apierror"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/dto"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/infra"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/service"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/store"
)

type InventarioHandler struct {
	svc      service.InventarioService
	reportes service.ReporteService
	catalogo *store.CatalogoStore
	negocio  infra.Negocio
}

func NewInventarioHandler(svc service.InventarioService, reportes service.ReporteService, catalogo *store.CatalogoStore, negocio infra.Negocio) *InventarioHandler {
	return &InventarioHandler{svc: svc, reportes: reportes, catalogo: catalogo, negocio: negocio}
}

// RecibirMercancia registers a merchandise reception: stock += cantidad.
func (h *InventarioHandler) RecibirMercancia(c *gin.Context) {
	var req dto.RecibirMercanciaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, err := uuid.Parse(req.ProductoID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.RecibirMercancia(c.Request.Context(), id, req.Cantidad)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExportarCSV streams the inventory valuation report as CSV.
func (h *InventarioHandler) ExportarCSV(c *gin.Context) {
	data, err := h.reportes.InventarioCSV(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el CSV"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="inventario.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// ReportePDF streams the inventory valuation report as an A4 PDF.
func (h *InventarioHandler) ReportePDF(c *gin.Context) {
	productos := h.catalogo.List(store.FiltroCatalogo{})
	pdf, err := infra.GenerateInventarioPDF(h.negocio, productos, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el PDF"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="inventario.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
