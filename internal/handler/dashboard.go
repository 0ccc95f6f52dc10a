package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/apierror"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/dto"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/service"
)

type DashboardHandler struct{ svc service.ReporteService }

func NewDashboardHandler(svc service.ReporteService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Obtener serves the operational summary screen: windowed totals, low-stock
// count and the latest cached AI advice.
func (h *DashboardHandler) Obtener(c *gin.Context) {
	var filter dto.ReporteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Dashboard(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular el dashboard"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
