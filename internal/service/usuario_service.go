package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/adaptador"
	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/dto"
	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/repository"
	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/validacion"
)

// UsuarioService covers registration and the passwordless custom-token login.
type UsuarioService interface {
	Registrar(ctx context.Context, payload dto.RegistrarUsuarioRequest) Resultado
	Login(ctx context.Context, correo string) ResultadoLogin
	ObtenerPorCorreo(ctx context.Context, correo string) ResultadoUsuario
}

type usuarioService struct {
	repo repository.UsuarioRepository
	auth adaptador.Autenticacion
}

func NewUsuarioService(repo repository.UsuarioRepository, auth adaptador.Autenticacion) UsuarioService {
	return &usuarioService{repo: repo, auth: auth}
}

func (s *usuarioService) Registrar(ctx context.Context, payload dto.RegistrarUsuarioRequest) Resultado {
	if v := validacion.Email(payload.Correo); !v.Valido {
		return fallo(MotivoValidacion, v.Mensaje)
	}

	existente, err := s.repo.ObtenerPorCorreo(ctx, payload.Correo)
	if err != nil {
		log.Error().Err(err).Msg("error al buscar usuario existente")
		return fallo(MotivoInterno, "Error interno al crear el usuario")
	}
	if existente != nil {
		return fallo(MotivoValidacion, "El correo electrónico ya está registrado")
	}

	// The identity provider issues the canonical id first so the persisted
	// record carries the same id the provider knows.
	uid, err := s.auth.CrearUsuario(ctx, payload.Correo)
	if err != nil {
		log.Error().Err(err).Msg("error al crear identidad del usuario")
		return fallo(MotivoInterno, "Error interno al crear el usuario")
	}

	if err := s.repo.CrearConID(ctx, uid, payload.Correo); err != nil {
		log.Error().Err(err).Str("uid", uid).Msg("error al persistir usuario")
		return fallo(MotivoInterno, "Error al crear el usuario")
	}
	return exito("Usuario creado exitosamente")
}

func (s *usuarioService) Login(ctx context.Context, correo string) ResultadoLogin {
	if v := validacion.Email(correo); !v.Valido {
		return ResultadoLogin{Resultado: fallo(MotivoValidacion, v.Mensaje)}
	}

	usuario, err := s.repo.ObtenerPorCorreo(ctx, correo)
	if err != nil {
		log.Error().Err(err).Msg("error al buscar usuario")
		return ResultadoLogin{Resultado: fallo(MotivoInterno, "Error interno al procesar login")}
	}
	if usuario == nil {
		return ResultadoLogin{Resultado: fallo(MotivoNoEncontrado, "Usuario no encontrado")}
	}

	token, err := s.auth.EmitirToken(ctx, usuario.ID, map[string]any{"email": usuario.Correo})
	if err != nil {
		log.Error().Err(err).Str("uid", usuario.ID).Msg("error al emitir token")
		return ResultadoLogin{Resultado: fallo(MotivoInterno, "Error interno al procesar login")}
	}

	return ResultadoLogin{
		Resultado: exito("Login exitoso"),
		Token:     token,
		Usuario:   usuario,
	}
}

func (s *usuarioService) ObtenerPorCorreo(ctx context.Context, correo string) ResultadoUsuario {
	if v := validacion.Email(correo); !v.Valido {
		return ResultadoUsuario{Resultado: fallo(MotivoValidacion, v.Mensaje)}
	}

	usuario, err := s.repo.ObtenerPorCorreo(ctx, correo)
	if err != nil {
		log.Error().Err(err).Msg("error al buscar usuario")
		return ResultadoUsuario{Resultado: fallo(MotivoInterno, "Error interno al obtener el usuario")}
	}
	if usuario == nil {
		return ResultadoUsuario{Resultado: fallo(MotivoNoEncontrado, "Usuario no encontrado")}
	}
	return ResultadoUsuario{Resultado: exito("Usuario encontrado"), Usuario: usuario}
}
