package model

import "strings"

// ConstruirPathUsuario builds the owner path stored on every task.
func ConstruirPathUsuario(usuarioID string) string {
	return "/usuarios/" + usuarioID
}

// NormalizarTexto strips leading and trailing whitespace.
func NormalizarTexto(texto string) string {
	return strings.TrimSpace(texto)
}
