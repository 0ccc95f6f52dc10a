package infra

import (
	"fmt"
	"net/url"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/model"
)

// MensajeWhatsApp builds the preformatted invoice text for a sale and the
// wa.me link that opens it in the messaging app.
func MensajeWhatsApp(negocio Negocio, venta model.Venta) (mensaje, enlace string) {
	mensaje = fmt.Sprintf("*%s*\nFactura: #%s\nTOTAL: %s\n¡Gracias por elegirnos!",
		negocio.Nombre, venta.ID.String()[:8], model.FormatCOP(venta.Total))
	enlace = "https://wa.me/?text=" + url.QueryEscape(mensaje)
	return mensaje, enlace
}
