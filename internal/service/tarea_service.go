package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/adaptador"
	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/dto"
	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/model"
	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/repository"
	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/validacion"
)

// TareaService owns validation and ownership enforcement for tasks.
// Ordering across mutating operations: existence and ownership are checked
// before any field-level validation of update payloads; field validation
// always precedes persistence.
type TareaService interface {
	ObtenerPorUsuario(ctx context.Context, usuarioID string) ResultadoTareas
	Crear(ctx context.Context, usuarioID string, payload dto.CrearTareaRequest) Resultado
	Actualizar(ctx context.Context, usuarioID, tareaID string, payload dto.ActualizarTareaRequest) Resultado
	Eliminar(ctx context.Context, usuarioID, tareaID string) Resultado
}

type tareaService struct {
	repo   repository.TareaRepository
	tiempo adaptador.Tiempo
}

func NewTareaService(repo repository.TareaRepository, tiempo adaptador.Tiempo) TareaService {
	return &tareaService{repo: repo, tiempo: tiempo}
}

func (s *tareaService) ObtenerPorUsuario(ctx context.Context, usuarioID string) ResultadoTareas {
	if v := validacion.IDRequerido(usuarioID, "ID de usuario"); !v.Valido {
		return ResultadoTareas{Resultado: fallo(MotivoValidacion, v.Mensaje)}
	}

	tareas, err := s.repo.ObtenerPorUsuario(ctx, usuarioID)
	if err != nil {
		log.Error().Err(err).Str("usuario_id", usuarioID).Msg("error al obtener tareas")
		return ResultadoTareas{Resultado: fallo(MotivoInterno, "Error interno al obtener tareas")}
	}

	mensaje := "Sin tareas"
	if len(tareas) > 0 {
		mensaje = "Se han encontrado tareas"
	}
	// An empty list is a successful read, not an error.
	return ResultadoTareas{Resultado: exito(mensaje), Datos: tareas}
}

func (s *tareaService) Crear(ctx context.Context, usuarioID string, payload dto.CrearTareaRequest) Resultado {
	if v := validacion.IDRequerido(usuarioID, "ID de usuario"); !v.Valido {
		return fallo(MotivoValidacion, v.Mensaje)
	}
	if v := validacion.TituloRequerido(payload.Titulo); !v.Valido {
		return fallo(MotivoValidacion, v.Mensaje)
	}
	if v := validacion.Estado(payload.Estado); !v.Valido {
		return fallo(MotivoValidacion, v.Mensaje)
	}

	datos := model.CrearTarea{
		Titulo:          model.NormalizarTexto(payload.Titulo),
		Descripcion:     model.NormalizarTexto(payload.Descripcion),
		Estado:          payload.Estado,
		FechaDeCreacion: s.tiempo.Ahora(),
		Usuario:         model.ConstruirPathUsuario(usuarioID),
	}
	if err := s.repo.Crear(ctx, datos); err != nil {
		log.Error().Err(err).Str("usuario_id", usuarioID).Msg("error al crear tarea")
		return fallo(MotivoInterno, "No fue posible crear la tarea")
	}
	return exito("Tarea creada exitosamente")
}

func (s *tareaService) Actualizar(ctx context.Context, usuarioID, tareaID string, payload dto.ActualizarTareaRequest) Resultado {
	if v := validacion.IDRequerido(usuarioID, "ID de usuario"); !v.Valido {
		return fallo(MotivoValidacion, v.Mensaje)
	}
	if v := validacion.IDRequerido(tareaID, "ID de tarea"); !v.Valido {
		return fallo(MotivoValidacion, v.Mensaje)
	}

	if res := s.validarPropiedad(ctx, usuarioID, tareaID); !res.Exito {
		return res
	}

	parcial := make(map[string]any)
	if payload.Titulo != nil {
		if v := validacion.TituloRequerido(*payload.Titulo); !v.Valido {
			return fallo(MotivoValidacion, v.Mensaje)
		}
		parcial["titulo"] = model.NormalizarTexto(*payload.Titulo)
	}
	if payload.Descripcion != nil {
		parcial["descripcion"] = model.NormalizarTexto(*payload.Descripcion)
	}
	if payload.Estado != nil {
		if v := validacion.Estado(*payload.Estado); !v.Valido {
			return fallo(MotivoValidacion, v.Mensaje)
		}
		parcial["estado"] = *payload.Estado
	}

	if len(parcial) == 0 {
		return fallo(MotivoValidacion, "No se proporcionaron campos para actualizar")
	}

	if err := s.repo.Actualizar(ctx, tareaID, parcial); err != nil {
		log.Error().Err(err).Str("tarea_id", tareaID).Msg("error al actualizar tarea")
		return fallo(MotivoInterno, "No fue posible actualizar la tarea")
	}
	return exito("Tarea actualizada exitosamente")
}

func (s *tareaService) Eliminar(ctx context.Context, usuarioID, tareaID string) Resultado {
	if v := validacion.IDRequerido(usuarioID, "ID de usuario"); !v.Valido {
		return fallo(MotivoValidacion, v.Mensaje)
	}
	if v := validacion.IDRequerido(tareaID, "ID de tarea"); !v.Valido {
		return fallo(MotivoValidacion, v.Mensaje)
	}

	if res := s.validarPropiedad(ctx, usuarioID, tareaID); !res.Exito {
		return res
	}

	if err := s.repo.Eliminar(ctx, tareaID); err != nil {
		log.Error().Err(err).Str("tarea_id", tareaID).Msg("error al eliminar tarea")
		return fallo(MotivoInterno, "No fue posible eliminar la tarea")
	}
	return exito("Tarea eliminada exitosamente")
}

// validarPropiedad checks that the task exists and belongs to the caller.
func (s *tareaService) validarPropiedad(ctx context.Context, usuarioID, tareaID string) Resultado {
	tarea, err := s.repo.ObtenerPorID(ctx, tareaID)
	if err != nil {
		log.Error().Err(err).Str("tarea_id", tareaID).Msg("error al obtener tarea")
		return fallo(MotivoInterno, "Error interno al obtener la tarea")
	}
	if tarea == nil {
		return fallo(MotivoNoEncontrado, "Tarea no encontrada")
	}

	usuarioPath := model.ConstruirPathUsuario(usuarioID)
	if v := validacion.PropiedadTarea(usuarioPath, tarea.Usuario); !v.Valido {
		return fallo(MotivoSinPermiso, v.Mensaje)
	}
	return exito("")
}
