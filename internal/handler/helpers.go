package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/dto"
	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/service"
)

// vincularJSON binds the JSON body into req. On a malformed body it writes
// the 400 envelope and returns false — the caller must return immediately.
func vincularJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NuevaRespuesta(false, "El body debe ser un objeto JSON válido"))
		return false
	}
	return true
}

// statusDesdeResultado maps a service result onto the task endpoints' status
// policy: every expected failure is a 400, storage/provider faults are 500.
func statusDesdeResultado(res service.Resultado) int {
	switch {
	case res.Exito:
		return http.StatusOK
	case res.Motivo == service.MotivoInterno:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
