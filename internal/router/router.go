package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/adaptador"
	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/almacen"
	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/config"
	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/dto"
	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/handler"
	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/middleware"
	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/repository"
	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← BaseDeDatos
func New(cfg *config.Config, db almacen.BaseDeDatos) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())

	// ── Adapters ─────────────────────────────────────────────────────────────
	auth := adaptador.NewAutenticacionJWT(cfg.JWTSecret, time.Duration(cfg.JWTExpirationHours)*time.Hour)
	verificador := adaptador.NewVerificadorJWT(cfg.JWTSecret)
	tiempo := adaptador.TiempoSistema{}

	// ── Repositories ─────────────────────────────────────────────────────────
	tareaRepo := repository.NewTareaRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	tareaSvc := service.NewTareaService(tareaRepo, tiempo)
	usuarioSvc := service.NewUsuarioService(usuarioRepo, auth)

	// ── Handlers ─────────────────────────────────────────────────────────────
	tareasH := handler.NewTareasHandler(tareaSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db))

	// Single-method user routes: Any + ValidarMetodo reproduces the
	// one-function-per-endpoint dispatch, so a wrong method gets the 405
	// envelope naming the allowed method.
	r.Any("/v1/usuarios/registro", middleware.ValidarMetodo(http.MethodPost), middleware.ValidarJSON(), usuariosH.Registrar)
	r.Any("/v1/usuarios/login", middleware.ValidarMetodo(http.MethodPost), middleware.ValidarJSON(), usuariosH.Login)
	r.Any("/v1/usuarios/buscar", middleware.ValidarMetodo(http.MethodPost), middleware.ValidarJSON(), usuariosH.Buscar)

	// Protected task routes share one path; gin dispatches per method.
	authMW := middleware.Autenticacion(verificador)
	tareas := r.Group("/v1/tareas", middleware.ValidarJSON(), authMW)
	{
		tareas.GET("", tareasH.Listar)
		tareas.POST("", tareasH.Crear)
		tareas.PUT("", tareasH.Actualizar)
		tareas.DELETE("", tareasH.Eliminar)
	}

	// Envelope-shaped 405/404 for everything the route table does not cover.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.NuevaRespuesta(false, "Método no permitido"))
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NuevaRespuesta(false, "Recurso no encontrado"))
	})

	return r
}
