package dto

// RegistrarUsuarioRequest is the body of POST /v1/usuarios/registro.
type RegistrarUsuarioRequest struct {
	Correo string `json:"correo"`
}

// LoginRequest is the body of POST /v1/usuarios/login.
type LoginRequest struct {
	Correo string `json:"correo"`
}

// BuscarUsuarioRequest is the body of POST /v1/usuarios/buscar.
type BuscarUsuarioRequest struct {
	Correo string `json:"correo"`
}
