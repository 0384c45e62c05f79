package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/dto"
)

// ValidarMetodo rejects any request whose method differs from the single
// allowed one, naming that method in the 405 response. Routes registered via
// router.Any use this to mimic one-function-per-endpoint dispatch.
func ValidarMetodo(metodoPermitido string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != metodoPermitido {
			c.AbortWithStatusJSON(http.StatusMethodNotAllowed,
				dto.NuevaRespuesta(false, fmt.Sprintf("Solo se permiten solicitudes %s", metodoPermitido)))
			return
		}
		c.Next()
	}
}
