package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/dto"
	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/middleware"
	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/service"
)

type TareasHandler struct{ svc service.TareaService }

func NewTareasHandler(svc service.TareaService) *TareasHandler {
	return &TareasHandler{svc: svc}
}

// Listar responds GET /v1/tareas with every task of the authenticated owner.
func (h *TareasHandler) Listar(c *gin.Context) {
	usuario := middleware.GetUsuario(c)

	res := h.svc.ObtenerPorUsuario(c.Request.Context(), usuario.UID)
	c.JSON(statusDesdeResultado(res.Resultado), dto.Respuesta{
		Exito:   res.Exito,
		Datos:   res.Datos,
		Mensaje: res.Mensaje,
	})
}

// Crear responds POST /v1/tareas.
func (h *TareasHandler) Crear(c *gin.Context) {
	usuario := middleware.GetUsuario(c)

	var req dto.CrearTareaRequest
	if !vincularJSON(c, &req) {
		return
	}

	res := h.svc.Crear(c.Request.Context(), usuario.UID, req)
	c.JSON(statusDesdeResultado(res), dto.NuevaRespuesta(res.Exito, res.Mensaje))
}

// Actualizar responds PUT /v1/tareas; the task id travels in the body.
func (h *TareasHandler) Actualizar(c *gin.Context) {
	usuario := middleware.GetUsuario(c)

	var req dto.ActualizarTareaRequest
	if !vincularJSON(c, &req) {
		return
	}
	if req.TareaID == "" {
		c.JSON(http.StatusBadRequest, dto.NuevaRespuesta(false, "El ID de tarea es requerido"))
		return
	}

	res := h.svc.Actualizar(c.Request.Context(), usuario.UID, req.TareaID, req)
	c.JSON(statusDesdeResultado(res), dto.NuevaRespuesta(res.Exito, res.Mensaje))
}

// Eliminar responds DELETE /v1/tareas; the task id travels in the body.
func (h *TareasHandler) Eliminar(c *gin.Context) {
	usuario := middleware.GetUsuario(c)

	var req dto.EliminarTareaRequest
	if !vincularJSON(c, &req) {
		return
	}
	if req.TareaID == "" {
		c.JSON(http.StatusBadRequest, dto.NuevaRespuesta(false, "El ID de tarea es requerido"))
		return
	}

	res := h.svc.Eliminar(c.Request.Context(), usuario.UID, req.TareaID)
	c.JSON(statusDesdeResultado(res), dto.NuevaRespuesta(res.Exito, res.Mensaje))
}
