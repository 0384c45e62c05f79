package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/dto"
)

// ValidarJSON enforces a JSON media type on body-carrying requests. Only
// methods that usually send a body are checked, and an empty body is always
// accepted regardless of the declared method.
func ValidarJSON() gin.HandlerFunc {
	metodosConBody := map[string]bool{
		http.MethodPost:   true,
		http.MethodPut:    true,
		http.MethodPatch:  true,
		http.MethodDelete: true,
	}

	return func(c *gin.Context) {
		if !metodosConBody[c.Request.Method] || c.Request.ContentLength == 0 {
			c.Next()
			return
		}

		contentType := c.GetHeader("Content-Type")
		if !strings.Contains(contentType, "application/json") {
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType,
				dto.NuevaRespuesta(false, "Content-Type debe ser application/json"))
			return
		}
		c.Next()
	}
}
