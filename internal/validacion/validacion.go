// Package validacion contains the pure validation primitives used by the
// service layer. All functions are synchronous, side-effect free, and return
// the same Resultado shape so call sites can short-circuit uniformly.
package validacion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/model"
)

// Resultado is the uniform outcome of every validation primitive.
// Mensaje is only populated when Valido is false.
type Resultado struct {
	Valido  bool
	Mensaje string
}

func ok() Resultado { return Resultado{Valido: true} }

func falla(mensaje string) Resultado { return Resultado{Valido: false, Mensaje: mensaje} }

// regexEmail matches local-part @ domain . tld with no embedded whitespace.
var regexEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IDRequerido fails when the value is empty after trimming. nombreCampo is
// interpolated into the message so callers get field-specific errors.
func IDRequerido(valor, nombreCampo string) Resultado {
	if strings.TrimSpace(valor) == "" {
		return falla(fmt.Sprintf("El %s es requerido", nombreCampo))
	}
	return ok()
}

// TituloRequerido checks that a task title is not empty after trimming.
func TituloRequerido(titulo string) Resultado {
	return IDRequerido(titulo, "título")
}

// Estado accepts only the two task status codes.
func Estado(estado string) Resultado {
	if estado != model.EstadoPendiente && estado != model.EstadoCompletada {
		return falla("El estado debe ser 'P' o 'C'")
	}
	return ok()
}

// EmailRequerido fails on a missing or blank email.
func EmailRequerido(correo string) Resultado {
	if strings.TrimSpace(correo) == "" {
		return falla("El correo electrónico es requerido")
	}
	return ok()
}

// FormatoEmail checks the email shape against regexEmail.
func FormatoEmail(correo string) Resultado {
	if !regexEmail.MatchString(correo) {
		return falla("El formato del correo electrónico no es válido")
	}
	return ok()
}

// Email composes the required check and the format check, failing fast on the
// first violated rule.
func Email(correo string) Resultado {
	if r := EmailRequerido(correo); !r.Valido {
		return r
	}
	return FormatoEmail(correo)
}

// PropiedadTarea enforces that a task's stored owner path equals the
// authenticated caller's owner path.
func PropiedadTarea(usuarioPath, tareaUsuarioPath string) Resultado {
	if tareaUsuarioPath != usuarioPath {
		return falla("No tienes permiso para acceder a esta tarea")
	}
	return ok()
}
