package model

import "time"

// Task status codes as persisted: "P" (pendiente) or "C" (completada).
const (
	EstadoPendiente  = "P"
	EstadoCompletada = "C"
)

// Tarea is a to-do item owned by exactly one user. Usuario holds the owner
// path ("/usuarios/<id>") and is immutable after creation; ownership is
// enforced by the service layer, not by the store.
type Tarea struct {
	ID              string    `json:"id"`
	Titulo          string    `json:"titulo"`
	Descripcion     string    `json:"descripcion"`
	Estado          string    `json:"estado"`
	FechaDeCreacion time.Time `json:"fecha_de_creacion"`
	Usuario         string    `json:"usuario"`
}

// CrearTarea carries the fields persisted when a task is created (no ID —
// the store assigns one).
type CrearTarea struct {
	Titulo          string
	Descripcion     string
	Estado          string
	FechaDeCreacion time.Time
	Usuario         string
}
