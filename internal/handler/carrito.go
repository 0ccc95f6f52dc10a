package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/apierror"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/dto"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/model"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/service"
)

type CarritoHandler struct{ svc service.CarritoService }

func NewCarritoHandler(svc service.CarritoService) *CarritoHandler {
	return &CarritoHandler{svc: svc}
}

func (h *CarritoHandler) Ver(c *gin.Context) {
	c.JSON(http.StatusOK, carritoToResponse(h.svc))
}

func (h *CarritoHandler) Agregar(c *gin.Context) {
	var req dto.AgregarItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, err := uuid.Parse(req.ProductoID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if _, err := h.svc.Agregar(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, carritoToResponse(h.svc))
}

// Actualizar patches one cart line. Cantidad and Precio are both optional;
// a request with neither is a no-op that still returns the current cart.
func (h *CarritoHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("producto_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if req.Cantidad != nil {
		h.svc.SetCantidad(id, *req.Cantidad)
	}
	if req.Precio != nil {
		h.svc.SetPrecio(id, *req.Precio)
	}
	c.JSON(http.StatusOK, carritoToResponse(h.svc))
}

func (h *CarritoHandler) Quitar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("producto_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	h.svc.Quitar(id)
	c.JSON(http.StatusOK, carritoToResponse(h.svc))
}

func (h *CarritoHandler) Limpiar(c *gin.Context) {
	h.svc.Limpiar()
	c.Status(http.StatusNoContent)
}

func carritoToResponse(svc service.CarritoService) dto.CarritoResponse {
	items := svc.Items()
	out := make([]dto.ItemCarritoResponse, 0, len(items))
	for _, it := range items {
		out = append(out, itemCarritoToResponse(it))
	}
	return dto.CarritoResponse{
		Items:      out,
		Total:      svc.Total(),
		TotalCosto: svc.TotalCosto(),
	}
}

func itemCarritoToResponse(it model.ItemCarrito) dto.ItemCarritoResponse {
	return dto.ItemCarritoResponse{
		ProductoID:     it.ProductoID.String(),
		Nombre:         it.Nombre,
		Categoria:      string(it.Categoria),
		Unidad:         string(it.Unidad),
		PrecioUnitario: it.PrecioUnitario,
		Cantidad:       it.Cantidad,
		Subtotal:       it.Subtotal(),
	}
}
