package adaptador

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// UsuarioDecodificado is the identity a verified token carries.
type UsuarioDecodificado struct {
	UID   string
	Email string
}

// VerificadorToken validates a raw bearer token and extracts the caller's
// identity. It fails with an authentication error on any invalid or expired
// token.
type VerificadorToken interface {
	Verificar(ctx context.Context, token string) (*UsuarioDecodificado, error)
}

// ErrTokenInvalido is returned for every verification failure; the concrete
// parse error is never surfaced to clients.
var ErrTokenInvalido = errors.New("Token inválido o expirado")

// VerificadorJWT validates HS256 custom tokens issued by AutenticacionJWT.
type VerificadorJWT struct {
	secreto []byte
}

func NewVerificadorJWT(secreto string) *VerificadorJWT {
	return &VerificadorJWT{secreto: []byte(secreto)}
}

func (v *VerificadorJWT) Verificar(_ context.Context, crudo string) (*UsuarioDecodificado, error) {
	token, err := jwt.Parse(crudo, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secreto, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalido
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalido
	}
	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return nil, ErrTokenInvalido
	}
	email, _ := claims["email"].(string)

	return &UsuarioDecodificado{UID: uid, Email: email}, nil
}
