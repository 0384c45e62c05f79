package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/adaptador"
	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/dto"
)

const (
	// UsuarioKey is the gin-context key holding the authenticated identity.
	UsuarioKey = "usuario"
)

// UsuarioAutenticado is the identity the auth guard attaches to the request
// context after a successful verification.
type UsuarioAutenticado struct {
	UID   string
	Email string
}

// Autenticacion validates the Bearer token on every protected route using
// the injected verifier and attaches the caller's identity to the context.
// It never retries; all state lives in the per-request context.
func Autenticacion(verificador adaptador.VerificadorToken) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NuevaRespuesta(false, "Token de autenticación no proporcionado"))
			return
		}

		crudo := strings.TrimPrefix(header, "Bearer ")
		decodificado, err := verificador.Verificar(c.Request.Context(), crudo)
		if err != nil {
			mensaje := err.Error()
			if mensaje == "" {
				mensaje = "Token inválido o expirado"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NuevaRespuesta(false, mensaje))
			return
		}

		c.Set(UsuarioKey, UsuarioAutenticado{UID: decodificado.UID, Email: decodificado.Email})
		c.Next()
	}
}

// GetUsuario retrieves the authenticated identity from the gin context.
func GetUsuario(c *gin.Context) UsuarioAutenticado {
	usuario, _ := c.MustGet(UsuarioKey).(UsuarioAutenticado)
	return usuario
}
