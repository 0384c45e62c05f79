// Package adaptador wraps the identity, token-verification, and time
// capabilities the services consume. Each capability is an interface with
// one production implementation; tests inject their own doubles.
package adaptador

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Autenticacion is the identity provider: it issues user ids at registration
// and signs custom tokens at login.
type Autenticacion interface {
	CrearUsuario(ctx context.Context, correo string) (string, error)
	EmitirToken(ctx context.Context, uid string, claims map[string]any) (string, error)
}

// AutenticacionJWT issues uuid user ids and HS256-signed custom tokens.
type AutenticacionJWT struct {
	secreto  []byte
	duracion time.Duration
}

func NewAutenticacionJWT(secreto string, duracion time.Duration) *AutenticacionJWT {
	return &AutenticacionJWT{secreto: []byte(secreto), duracion: duracion}
}

// CrearUsuario issues the canonical id for a new account. The email is not
// stored here; persistence belongs to the user model.
func (a *AutenticacionJWT) CrearUsuario(_ context.Context, _ string) (string, error) {
	return uuid.NewString(), nil
}

func (a *AutenticacionJWT) EmitirToken(_ context.Context, uid string, claims map[string]any) (string, error) {
	ahora := time.Now()
	todas := jwt.MapClaims{
		"uid": uid,
		"iat": ahora.Unix(),
		"exp": ahora.Add(a.duracion).Unix(),
	}
	for nombre, valor := range claims {
		todas[nombre] = valor
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, todas)
	return token.SignedString(a.secreto)
}
