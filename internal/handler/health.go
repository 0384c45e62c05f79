package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/almacen"
)

// Health returns a JSON health check response.
// Checks store connectivity; never exposes credentials or internals.
func Health(db almacen.BaseDeDatos) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "connected"
		if !db.Conectado() {
			dbStatus = "error"
		}

		status := http.StatusOK
		if dbStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok": status == http.StatusOK,
			"db": dbStatus,
		})
	}
}
