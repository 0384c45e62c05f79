// Package dto holds the request payloads and the uniform response envelope.
// Every endpoint answers with Respuesta so clients can branch on `exito`
// without inspecting status codes.
package dto

import "github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/model"

// Respuesta is the canonical envelope for every HTTP response.
type Respuesta struct {
	Exito   bool   `json:"exito"`
	Datos   any    `json:"datos,omitempty"`
	Mensaje string `json:"mensaje"`
}

func NuevaRespuesta(exito bool, mensaje string) Respuesta {
	return Respuesta{Exito: exito, Mensaje: mensaje}
}

// LoginDatos is the payload returned inside the envelope on a successful
// login: the signed custom token plus the user record.
type LoginDatos struct {
	Token   string        `json:"token"`
	Usuario model.Usuario `json:"usuario"`
}
