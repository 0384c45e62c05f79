// Package almacen defines the document-store abstraction the repositories
// depend on. Models never see a concrete database: they speak in collections,
// documents, and field-equality filters, the same contract the hosting
// platform's document database exposes.
package almacen

import "context"

// Documento is the generic row shape: an opaque id plus the stored fields.
type Documento struct {
	ID    string
	Datos map[string]any
}

// BaseDeDatos is the storage capability consumed by the repositories.
// Implementations: GormStore (production) and Memoria (test double).
type BaseDeDatos interface {
	// Obtener returns every document in the collection matching all
	// field-equality filters. An empty result is not an error.
	Obtener(ctx context.Context, coleccion string, filtros map[string]any) ([]Documento, error)

	// ObtenerPorID returns the document with the given id, or (nil, nil)
	// when it does not exist.
	ObtenerPorID(ctx context.Context, coleccion, id string) (*Documento, error)

	// Guardar inserts a document with a store-assigned id and returns it.
	Guardar(ctx context.Context, coleccion string, datos map[string]any) (string, error)

	// GuardarConID inserts a document under a caller-chosen id.
	GuardarConID(ctx context.Context, coleccion, id string, datos map[string]any) error

	// ActualizarPorID merges the partial fields into an existing document.
	// Returns an error when the id is unknown.
	ActualizarPorID(ctx context.Context, coleccion, id string, parcial map[string]any) error

	// EliminarPorID removes a document. Deleting an absent id is not an error.
	EliminarPorID(ctx context.Context, coleccion, id string) error

	// Conectado reports whether the underlying connection is usable.
	Conectado() bool

	// Cerrar releases the underlying connection.
	Cerrar() error
}
