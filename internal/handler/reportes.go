package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/apierror"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/dto"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/infra"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/service"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/store"
)

type ReportesHandler struct {
	svc     service.ReporteService
	ventas  *store.VentaStore
	negocio infra.Negocio
}

func NewReportesHandler(svc service.ReporteService, ventas *store.VentaStore, negocio infra.Negocio) *ReportesHandler {
	return &ReportesHandler{svc: svc, ventas: ventas, negocio: negocio}
}

func (h *ReportesHandler) Resumen(c *gin.Context) {
	var filter dto.ReporteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Resumen(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular el resumen"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) PorCategoria(c *gin.Context) {
	var filter dto.ReporteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.PorCategoria(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular las categorias"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) MasRentables(c *gin.Context) {
	var filter dto.RentablesFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(&filter); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.New("limit fuera de rango"))
		return
	}
	resp, err := h.svc.MasRentables(c.Request.Context(), filter.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular el ranking"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VentasCSV streams the filtered sale history as the management CSV report.
func (h *ReportesHandler) VentasCSV(c *gin.Context) {
	var filter dto.ReporteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	data, err := h.svc.VentasCSV(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el CSV"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="ventas_`+filter.Periodo+`.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// VentasPDF streams the filtered sale history as an A4 PDF report.
func (h *ReportesHandler) VentasPDF(c *gin.Context) {
	var filter dto.ReporteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	ventas := service.FiltrarPorPeriodo(h.ventas.List(), service.Periodo(filter.Periodo), time.Now())
	pdf, err := infra.GenerateReporteVentasPDF(h.negocio, ventas, filter.Periodo, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el PDF"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="ventas_`+filter.Periodo+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
