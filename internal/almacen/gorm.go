package almacen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// filaDocumento is the single-table layout backing every collection: the
// collection name plus the document id form the key, the fields live in a
// JSON column so the store stays schema-free like the document database it
// stands in for.
type filaDocumento struct {
	Coleccion string         `gorm:"column:coleccion;primaryKey"`
	ID        string         `gorm:"column:id;primaryKey"`
	Datos     datatypes.JSON `gorm:"column:datos"`
}

func (filaDocumento) TableName() string { return "documentos" }

// MigrarEsquema creates the documentos table if it does not exist yet.
func MigrarEsquema(db *gorm.DB) error {
	return db.AutoMigrate(&filaDocumento{})
}

// GormStore is the production BaseDeDatos: one shared, effectively-immutable
// GORM handle reused across requests. Single-document writes are atomic at
// the database; there is no multi-document transaction.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

func (s *GormStore) Obtener(ctx context.Context, coleccion string, filtros map[string]any) ([]Documento, error) {
	q := s.db.WithContext(ctx).Where("coleccion = ?", coleccion)
	for campo, valor := range filtros {
		// JSONQuery keeps the equality filter portable across postgres
		// (production) and sqlite (tests).
		q = q.Where(datatypes.JSONQuery("datos").Equals(valor, campo))
	}

	var filas []filaDocumento
	if err := q.Find(&filas).Error; err != nil {
		return nil, err
	}

	docs := make([]Documento, 0, len(filas))
	for _, f := range filas {
		datos, err := decodificarDatos(f.Datos)
		if err != nil {
			return nil, err
		}
		docs = append(docs, Documento{ID: f.ID, Datos: datos})
	}
	return docs, nil
}

func (s *GormStore) ObtenerPorID(ctx context.Context, coleccion, id string) (*Documento, error) {
	var f filaDocumento
	err := s.db.WithContext(ctx).
		Where("coleccion = ? AND id = ?", coleccion, id).
		First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	datos, err := decodificarDatos(f.Datos)
	if err != nil {
		return nil, err
	}
	return &Documento{ID: f.ID, Datos: datos}, nil
}

func (s *GormStore) Guardar(ctx context.Context, coleccion string, datos map[string]any) (string, error) {
	id := uuid.NewString()
	if err := s.GuardarConID(ctx, coleccion, id, datos); err != nil {
		return "", err
	}
	return id, nil
}

func (s *GormStore) GuardarConID(ctx context.Context, coleccion, id string, datos map[string]any) error {
	crudo, err := json.Marshal(datos)
	if err != nil {
		return fmt.Errorf("codificar documento: %w", err)
	}
	return s.db.WithContext(ctx).Create(&filaDocumento{
		Coleccion: coleccion,
		ID:        id,
		Datos:     datatypes.JSON(crudo),
	}).Error
}

func (s *GormStore) ActualizarPorID(ctx context.Context, coleccion, id string, parcial map[string]any) error {
	// Read-merge-write: the document database this store mirrors merges
	// partial updates field by field. The read/write pair is not wrapped in
	// a transaction; the race with a concurrent delete is accepted.
	doc, err := s.ObtenerPorID(ctx, coleccion, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return gorm.ErrRecordNotFound
	}

	for campo, valor := range parcial {
		doc.Datos[campo] = valor
	}
	crudo, err := json.Marshal(doc.Datos)
	if err != nil {
		return fmt.Errorf("codificar documento: %w", err)
	}

	res := s.db.WithContext(ctx).
		Model(&filaDocumento{}).
		Where("coleccion = ? AND id = ?", coleccion, id).
		Update("datos", datatypes.JSON(crudo))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *GormStore) EliminarPorID(ctx context.Context, coleccion, id string) error {
	return s.db.WithContext(ctx).
		Where("coleccion = ? AND id = ?", coleccion, id).
		Delete(&filaDocumento{}).Error
}

func (s *GormStore) Conectado() bool {
	sqlDB, err := s.db.DB()
	if err != nil {
		return false
	}
	return sqlDB.Ping() == nil
}

func (s *GormStore) Cerrar() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func decodificarDatos(crudo datatypes.JSON) (map[string]any, error) {
	datos := make(map[string]any)
	if len(crudo) == 0 {
		return datos, nil
	}
	if err := json.Unmarshal(crudo, &datos); err != nil {
		return nil, fmt.Errorf("decodificar documento: %w", err)
	}
	return datos, nil
}
