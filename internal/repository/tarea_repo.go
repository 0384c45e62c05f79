// Package repository translates domain entities to and from the generic
// document shape of the storage abstraction. Each repository owns exactly
// one collection name.
package repository

import (
	"context"
	"time"

	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/almacen"
	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/model"
)

type TareaRepository interface {
	ObtenerPorUsuario(ctx context.Context, usuarioID string) ([]model.Tarea, error)
	ObtenerPorID(ctx context.Context, tareaID string) (*model.Tarea, error)
	Crear(ctx context.Context, datos model.CrearTarea) error
	Actualizar(ctx context.Context, tareaID string, parcial map[string]any) error
	Eliminar(ctx context.Context, tareaID string) error
}

type tareaRepo struct {
	db        almacen.BaseDeDatos
	coleccion string
}

func NewTareaRepository(db almacen.BaseDeDatos) TareaRepository {
	return &tareaRepo{db: db, coleccion: "tareas"}
}

func (r *tareaRepo) ObtenerPorUsuario(ctx context.Context, usuarioID string) ([]model.Tarea, error) {
	usuarioPath := model.ConstruirPathUsuario(usuarioID)
	docs, err := r.db.Obtener(ctx, r.coleccion, map[string]any{"usuario": usuarioPath})
	if err != nil {
		return nil, err
	}

	tareas := make([]model.Tarea, 0, len(docs))
	for _, doc := range docs {
		tareas = append(tareas, tareaDesdeDocumento(doc))
	}
	return tareas, nil
}

// ObtenerPorID looks the task up by document id. (An earlier iteration of
// this backend fetched the whole collection and filtered in memory; the
// direct lookup replaced it.)
func (r *tareaRepo) ObtenerPorID(ctx context.Context, tareaID string) (*model.Tarea, error) {
	doc, err := r.db.ObtenerPorID(ctx, r.coleccion, tareaID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	t := tareaDesdeDocumento(*doc)
	return &t, nil
}

func (r *tareaRepo) Crear(ctx context.Context, datos model.CrearTarea) error {
	_, err := r.db.Guardar(ctx, r.coleccion, map[string]any{
		"titulo":            datos.Titulo,
		"descripcion":       datos.Descripcion,
		"estado":            datos.Estado,
		"fecha_de_creacion": datos.FechaDeCreacion.Format(time.RFC3339Nano),
		"usuario":           datos.Usuario,
	})
	return err
}

func (r *tareaRepo) Actualizar(ctx context.Context, tareaID string, parcial map[string]any) error {
	return r.db.ActualizarPorID(ctx, r.coleccion, tareaID, parcial)
}

func (r *tareaRepo) Eliminar(ctx context.Context, tareaID string) error {
	return r.db.EliminarPorID(ctx, r.coleccion, tareaID)
}

func tareaDesdeDocumento(doc almacen.Documento) model.Tarea {
	t := model.Tarea{
		ID:          doc.ID,
		Titulo:      campoTexto(doc.Datos, "titulo"),
		Descripcion: campoTexto(doc.Datos, "descripcion"),
		Estado:      campoTexto(doc.Datos, "estado"),
		Usuario:     campoTexto(doc.Datos, "usuario"),
	}
	if crudo := campoTexto(doc.Datos, "fecha_de_creacion"); crudo != "" {
		if fecha, err := time.Parse(time.RFC3339Nano, crudo); err == nil {
			t.FechaDeCreacion = fecha
		}
	}
	return t
}

func campoTexto(datos map[string]any, campo string) string {
	valor, _ := datos[campo].(string)
	return valor
}
