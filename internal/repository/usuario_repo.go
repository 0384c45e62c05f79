package repository

import (
	"context"

	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/almacen"
	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/model"
)

type UsuarioRepository interface {
	// ObtenerPorCorreo returns the user with that exact email, or nil.
	ObtenerPorCorreo(ctx context.Context, correo string) (*model.Usuario, error)
	// CrearConID persists a user under the id the identity provider issued.
	CrearConID(ctx context.Context, id, correo string) error
}

type usuarioRepo struct {
	db        almacen.BaseDeDatos
	coleccion string
}

func NewUsuarioRepository(db almacen.BaseDeDatos) UsuarioRepository {
	return &usuarioRepo{db: db, coleccion: "usuarios"}
}

func (r *usuarioRepo) ObtenerPorCorreo(ctx context.Context, correo string) (*model.Usuario, error) {
	docs, err := r.db.Obtener(ctx, r.coleccion, map[string]any{"correo": correo})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return &model.Usuario{
		ID:     docs[0].ID,
		Correo: campoTexto(docs[0].Datos, "correo"),
	}, nil
}

func (r *usuarioRepo) CrearConID(ctx context.Context, id, correo string) error {
	return r.db.GuardarConID(ctx, r.coleccion, id, map[string]any{"correo": correo})
}
