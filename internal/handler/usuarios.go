package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/dto"
	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/service"
)

type UsuariosHandler struct{ svc service.UsuarioService }

func NewUsuariosHandler(svc service.UsuarioService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

// Registrar responds POST /v1/usuarios/registro.
func (h *UsuariosHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarUsuarioRequest
	if !vincularJSON(c, &req) {
		return
	}
	if req.Correo == "" {
		c.JSON(http.StatusBadRequest, dto.NuevaRespuesta(false, "No se proporcionaron datos o falta el correo"))
		return
	}

	res := h.svc.Registrar(c.Request.Context(), req)
	c.JSON(statusDesdeResultado(res), dto.NuevaRespuesta(res.Exito, res.Mensaje))
}

// Login responds POST /v1/usuarios/login. An unknown email is a 401, not a
// validation error; missing or malformed emails stay 400.
func (h *UsuariosHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !vincularJSON(c, &req) {
		return
	}

	res := h.svc.Login(c.Request.Context(), req.Correo)
	if !res.Exito {
		status := statusDesdeResultado(res.Resultado)
		if res.Motivo == service.MotivoNoEncontrado {
			status = http.StatusUnauthorized
		}
		c.JSON(status, dto.NuevaRespuesta(false, res.Mensaje))
		return
	}

	c.JSON(http.StatusOK, dto.Respuesta{
		Exito:   true,
		Datos:   dto.LoginDatos{Token: res.Token, Usuario: *res.Usuario},
		Mensaje: res.Mensaje,
	})
}

// Buscar responds POST /v1/usuarios/buscar with the user matching the email.
func (h *UsuariosHandler) Buscar(c *gin.Context) {
	var req dto.BuscarUsuarioRequest
	if !vincularJSON(c, &req) {
		return
	}
	if req.Correo == "" {
		c.JSON(http.StatusBadRequest, dto.NuevaRespuesta(false, "El correo electrónico es requerido"))
		return
	}

	res := h.svc.ObtenerPorCorreo(c.Request.Context(), req.Correo)
	if !res.Exito {
		c.JSON(statusDesdeResultado(res.Resultado), dto.NuevaRespuesta(false, res.Mensaje))
		return
	}
	c.JSON(http.StatusOK, dto.Respuesta{Exito: true, Datos: res.Usuario, Mensaje: res.Mensaje})
}
