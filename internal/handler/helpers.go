package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/apierror"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/service"
	"github.com/recaudosinternacionales24-oss/super-carnes/internal/store"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError maps domain errors to HTTP statuses: not-found → 404,
// insufficient stock → 409, the remaining taxonomy → 400.
func respondError(c *gin.Context, err error) {
	var stockErr *store.StockInsuficienteError
	switch {
	case errors.Is(err, store.ErrProductoNoEncontrado),
		errors.Is(err, store.ErrVentaNoEncontrada),
		errors.Is(err, store.ErrClienteNoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.As(err, &stockErr):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.Is(err, service.ErrCantidadInvalida),
		errors.Is(err, service.ErrFechaInvalida),
		errors.Is(err, service.ErrCarritoVacio),
		errors.Is(err, service.ErrMetodoPagoInvalido):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	}
}
