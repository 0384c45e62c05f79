package dto

// CrearTareaRequest is the body of POST /v1/tareas.
type CrearTareaRequest struct {
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	Estado      string `json:"estado"`
}

// ActualizarTareaRequest is the body of PUT /v1/tareas. Pointer fields
// distinguish "absent" from "set to empty".
type ActualizarTareaRequest struct {
	TareaID     string  `json:"tareaId"`
	Titulo      *string `json:"titulo"`
	Descripcion *string `json:"descripcion"`
	Estado      *string `json:"estado"`
}

// EliminarTareaRequest is the body of DELETE /v1/tareas.
type EliminarTareaRequest struct {
	TareaID string `json:"tareaId"`
}
