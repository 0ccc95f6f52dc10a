package infra

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/model"
)

func TestMensajeWhatsApp(t *testing.T) {
	negocio := Negocio{Nombre: "SUPER CARNES", NIT: "900.555.222-1", Ciudad: "Cali, Colombia"}
	venta := model.Venta{
		ID:    uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000"),
		Total: decimal.NewFromInt(38000),
	}

	mensaje, enlace := MensajeWhatsApp(negocio, venta)

	assert.Contains(t, mensaje, "*SUPER CARNES*")
	assert.Contains(t, mensaje, "Factura: #a1b2c3d4")
	assert.Contains(t, mensaje, "TOTAL: $ 38.000")
	assert.Contains(t, mensaje, "¡Gracias por elegirnos!")

	assert.True(t, strings.HasPrefix(enlace, "https://wa.me/?text="))
	// el texto va URL-escapado: ni espacios ni saltos de linea crudos
	assert.NotContains(t, enlace, " ")
	assert.NotContains(t, enlace, "\n")
}
