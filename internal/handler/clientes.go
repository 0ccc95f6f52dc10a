package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/apierror"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/dto"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/service"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

func (h *ClientesHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarClienteRequest
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

func (h *ClientesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar clientes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
