package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS answers preflights and stamps the allow headers. origen comes from
// CORS_ORIGIN: "*" for development, a single origin, or a comma-separated
// list for production.
func CORS(origen string) gin.HandlerFunc {
	permitidos := origenesPermitidos(origen)

	return func(c *gin.Context) {
		solicitante := c.GetHeader("Origin")
		c.Header("Access-Control-Allow-Origin", resolverOrigen(permitidos, solicitante))
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "X-Request-ID")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

func origenesPermitidos(origen string) []string {
	if origen == "" || origen == "*" {
		return nil // nil means every origin is allowed
	}
	partes := strings.Split(origen, ",")
	for i := range partes {
		partes[i] = strings.TrimSpace(partes[i])
	}
	return partes
}

func resolverOrigen(permitidos []string, solicitante string) string {
	if permitidos == nil {
		return "*"
	}
	for _, o := range permitidos {
		if o == solicitante {
			return solicitante
		}
	}
	// Not allowed: echo the first configured origin so the browser blocks it.
	return permitidos[0]
}
