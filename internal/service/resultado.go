// Package service applies the business rules: field validation, ownership
// enforcement, duplicate-email prevention, and orchestration of the identity
// provider. Expected failures are communicated through tagged results, never
// as Go errors; only storage/adapter faults travel as errors and each method
// converts them at its boundary into a generic failure message.
package service

import (
	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/model"
)

// Motivo classifies a failed result so handlers can choose the HTTP status
// without parsing the message.
type Motivo int

const (
	MotivoNinguno Motivo = iota
	MotivoValidacion
	MotivoNoEncontrado
	MotivoSinPermiso
	MotivoInterno
)

// Resultado is the tagged result every service operation returns.
type Resultado struct {
	Exito   bool
	Mensaje string
	Motivo  Motivo
}

func exito(mensaje string) Resultado {
	return Resultado{Exito: true, Mensaje: mensaje}
}

func fallo(motivo Motivo, mensaje string) Resultado {
	return Resultado{Exito: false, Mensaje: mensaje, Motivo: motivo}
}

// ResultadoTareas carries the task list of a successful read.
type ResultadoTareas struct {
	Resultado
	Datos []model.Tarea
}

// ResultadoLogin carries the signed custom token and the user record.
type ResultadoLogin struct {
	Resultado
	Token   string
	Usuario *model.Usuario
}

// ResultadoUsuario carries a single user record.
type ResultadoUsuario struct {
	Resultado
	Usuario *model.Usuario
}
