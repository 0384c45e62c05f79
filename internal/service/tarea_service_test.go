package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/almacen"
	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/dto"
	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/model"
	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/repository"
)

type tiempoFijo struct{ t time.Time }

func (f tiempoFijo) Ahora() time.Time { return f.t }

// tareaRepoConError fuerza fallos de almacenamiento en cada operación.
type tareaRepoConError struct{}

func (tareaRepoConError) ObtenerPorUsuario(context.Context, string) ([]model.Tarea, error) {
	return nil, errors.New("boom")
}
func (tareaRepoConError) ObtenerPorID(context.Context, string) (*model.Tarea, error) {
	return nil, errors.New("boom")
}
func (tareaRepoConError) Crear(context.Context, model.CrearTarea) error { return errors.New("boom") }
func (tareaRepoConError) Actualizar(context.Context, string, map[string]any) error {
	return errors.New("boom")
}
func (tareaRepoConError) Eliminar(context.Context, string) error { return errors.New("boom") }

func nuevoServicioTareas(t *testing.T) (TareaService, repository.TareaRepository) {
	t.Helper()
	repo := repository.NewTareaRepository(almacen.NewMemoria())
	fijo := tiempoFijo{t: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)}
	return NewTareaService(repo, fijo), repo
}

func crearTareaDe(t *testing.T, svc TareaService, repo repository.TareaRepository, usuarioID, titulo string) model.Tarea {
	t.Helper()
	res := svc.Crear(context.Background(), usuarioID, dto.CrearTareaRequest{
		Titulo: titulo,
		Estado: model.EstadoPendiente,
	})
	require.True(t, res.Exito, res.Mensaje)
	tareas, err := repo.ObtenerPorUsuario(context.Background(), usuarioID)
	require.NoError(t, err)
	for _, tarea := range tareas {
		if tarea.Titulo == titulo {
			return tarea
		}
	}
	t.Fatalf("tarea %q no encontrada tras crearla", titulo)
	return model.Tarea{}
}

func TestTareasObtenerPorUsuario(t *testing.T) {
	ctx := context.Background()
	svc, repo := nuevoServicioTareas(t)

	res := svc.ObtenerPorUsuario(ctx, "user1")
	assert.True(t, res.Exito)
	assert.Equal(t, "Sin tareas", res.Mensaje)
	assert.Empty(t, res.Datos)

	crearTareaDe(t, svc, repo, "user1", "Hacer la cama")

	res = svc.ObtenerPorUsuario(ctx, "user1")
	assert.True(t, res.Exito)
	assert.Equal(t, "Se han encontrado tareas", res.Mensaje)
	require.Len(t, res.Datos, 1)
	assert.Equal(t, "/usuarios/user1", res.Datos[0].Usuario)

	sinID := svc.ObtenerPorUsuario(ctx, "")
	assert.False(t, sinID.Exito)
	assert.Equal(t, "El ID de usuario es requerido", sinID.Mensaje)
	assert.Equal(t, MotivoValidacion, sinID.Motivo)
}

func TestTareasCrear(t *testing.T) {
	ctx := context.Background()
	svc, repo := nuevoServicioTareas(t)

	res := svc.Crear(ctx, "user1", dto.CrearTareaRequest{
		Titulo:      "  Hacer la cama  ",
		Descripcion: "  antes de las 9  ",
		Estado:      model.EstadoPendiente,
	})
	require.True(t, res.Exito)
	assert.Equal(t, "Tarea creada exitosamente", res.Mensaje)

	tareas, err := repo.ObtenerPorUsuario(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, tareas, 1)
	assert.Equal(t, "Hacer la cama", tareas[0].Titulo, "el título se guarda sin espacios sobrantes")
	assert.Equal(t, "antes de las 9", tareas[0].Descripcion)
	assert.True(t, tareas[0].FechaDeCreacion.Equal(time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)))
}

func TestTareasCrearValidaciones(t *testing.T) {
	ctx := context.Background()
	svc, _ := nuevoServicioTareas(t)

	casos := []struct {
		nombre  string
		usuario string
		payload dto.CrearTareaRequest
		mensaje string
	}{
		{"sin usuario", "", dto.CrearTareaRequest{Titulo: "x", Estado: "P"}, "El ID de usuario es requerido"},
		{"sin titulo", "user1", dto.CrearTareaRequest{Estado: "P"}, "El título es requerido"},
		{"titulo en blanco", "user1", dto.CrearTareaRequest{Titulo: "   ", Estado: "P"}, "El título es requerido"},
		{"estado invalido", "user1", dto.CrearTareaRequest{Titulo: "x", Estado: "X"}, "El estado debe ser 'P' o 'C'"},
		{"estado vacio", "user1", dto.CrearTareaRequest{Titulo: "x"}, "El estado debe ser 'P' o 'C'"},
	}
	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			res := svc.Crear(ctx, caso.usuario, caso.payload)
			assert.False(t, res.Exito)
			assert.Equal(t, caso.mensaje, res.Mensaje)
			assert.Equal(t, MotivoValidacion, res.Motivo)
		})
	}
}

func TestTareasActualizar(t *testing.T) {
	ctx := context.Background()
	svc, repo := nuevoServicioTareas(t)
	tarea := crearTareaDe(t, svc, repo, "user1", "Original")

	nuevoTitulo := "  Renombrada  "
	estado := model.EstadoCompletada
	res := svc.Actualizar(ctx, "user1", tarea.ID, dto.ActualizarTareaRequest{
		Titulo: &nuevoTitulo,
		Estado: &estado,
	})
	require.True(t, res.Exito)
	assert.Equal(t, "Tarea actualizada exitosamente", res.Mensaje)

	actual, err := repo.ObtenerPorID(ctx, tarea.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renombrada", actual.Titulo)
	assert.Equal(t, model.EstadoCompletada, actual.Estado)
}

func TestTareasActualizarSinCampos(t *testing.T) {
	ctx := context.Background()
	svc, repo := nuevoServicioTareas(t)
	tarea := crearTareaDe(t, svc, repo, "user1", "Original")

	res := svc.Actualizar(ctx, "user1", tarea.ID, dto.ActualizarTareaRequest{})
	assert.False(t, res.Exito)
	assert.Equal(t, "No se proporcionaron campos para actualizar", res.Mensaje)
	assert.Equal(t, MotivoValidacion, res.Motivo)
}

func TestTareasActualizarCamposInvalidos(t *testing.T) {
	ctx := context.Background()
	svc, repo := nuevoServicioTareas(t)
	tarea := crearTareaDe(t, svc, repo, "user1", "Original")

	vacio := "   "
	res := svc.Actualizar(ctx, "user1", tarea.ID, dto.ActualizarTareaRequest{Titulo: &vacio})
	assert.False(t, res.Exito)
	assert.Equal(t, "El título es requerido", res.Mensaje)

	malEstado := "X"
	res = svc.Actualizar(ctx, "user1", tarea.ID, dto.ActualizarTareaRequest{Estado: &malEstado})
	assert.False(t, res.Exito)
	assert.Equal(t, "El estado debe ser 'P' o 'C'", res.Mensaje)

	// Nada llegó a persistirse
	actual, err := repo.ObtenerPorID(ctx, tarea.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", actual.Titulo)
	assert.Equal(t, model.EstadoPendiente, actual.Estado)
}

func TestTareasPropiedadAntesQueValidacionDeCampos(t *testing.T) {
	ctx := context.Background()
	svc, repo := nuevoServicioTareas(t)
	tarea := crearTareaDe(t, svc, repo, "user1", "De user1")

	// Con payload inválido incluido, la falta de permiso gana: la existencia
	// y la propiedad se comprueban antes que los campos.
	malEstado := "X"
	res := svc.Actualizar(ctx, "user2", tarea.ID, dto.ActualizarTareaRequest{Estado: &malEstado})
	assert.False(t, res.Exito)
	assert.Equal(t, "No tienes permiso para acceder a esta tarea", res.Mensaje)
	assert.Equal(t, MotivoSinPermiso, res.Motivo)

	res = svc.Actualizar(ctx, "user2", "no-existe", dto.ActualizarTareaRequest{Estado: &malEstado})
	assert.False(t, res.Exito)
	assert.Equal(t, "Tarea no encontrada", res.Mensaje)
	assert.Equal(t, MotivoNoEncontrado, res.Motivo)
}

func TestTareasEliminar(t *testing.T) {
	ctx := context.Background()
	svc, repo := nuevoServicioTareas(t)
	tarea := crearTareaDe(t, svc, repo, "user1", "Borrable")

	ajeno := svc.Eliminar(ctx, "user2", tarea.ID)
	assert.False(t, ajeno.Exito)
	assert.Equal(t, MotivoSinPermiso, ajeno.Motivo)

	res := svc.Eliminar(ctx, "user1", tarea.ID)
	require.True(t, res.Exito)
	assert.Equal(t, "Tarea eliminada exitosamente", res.Mensaje)

	desaparecida := svc.Eliminar(ctx, "user1", tarea.ID)
	assert.False(t, desaparecida.Exito)
	assert.Equal(t, "Tarea no encontrada", desaparecida.Mensaje)

	res = svc.Eliminar(ctx, "user1", "")
	assert.False(t, res.Exito)
	assert.Equal(t, "El ID de tarea es requerido", res.Mensaje)
}

func TestTareasFallosDeAlmacenamiento(t *testing.T) {
	ctx := context.Background()
	svc := NewTareaService(tareaRepoConError{}, tiempoFijo{t: time.Now()})

	lista := svc.ObtenerPorUsuario(ctx, "user1")
	assert.Equal(t, MotivoInterno, lista.Motivo)
	assert.Equal(t, "Error interno al obtener tareas", lista.Mensaje)

	crear := svc.Crear(ctx, "user1", dto.CrearTareaRequest{Titulo: "x", Estado: "P"})
	assert.Equal(t, MotivoInterno, crear.Motivo)
	assert.Equal(t, "No fue posible crear la tarea", crear.Mensaje)

	estado := "C"
	actualizar := svc.Actualizar(ctx, "user1", "id", dto.ActualizarTareaRequest{Estado: &estado})
	assert.Equal(t, MotivoInterno, actualizar.Motivo)
	assert.Equal(t, "Error interno al obtener la tarea", actualizar.Mensaje)

	eliminar := svc.Eliminar(ctx, "user1", "id")
	assert.Equal(t, MotivoInterno, eliminar.Motivo)
}
