package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/store"
)

// Health returns a JSON health check response with basic store counters.
// There is no external backing service to probe: the stores live in memory.
func Health(catalogo *store.CatalogoStore, ventas *store.VentaStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ok":        true,
			"productos": len(catalogo.List(store.FiltroCatalogo{})),
			"ventas":    ventas.Count(),
		})
	}
}
