package model

// Usuario is an account identified by the id the identity provider issued at
// registration. Exactly one user exists per distinct email.
type Usuario struct {
	ID     string `json:"id"`
	Correo string `json:"correo"`
}
