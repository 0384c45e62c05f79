// Package infra constructs the shared infrastructure handles. The database
// handle is created once at startup and reused by every request — the only
// state shared across invocations, and it is effectively immutable.
package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/josuedavidgodinez/atom-challenge-crud-tasks-backend/internal/almacen"
)

// NewDatabase establishes a GORM connection backed by pgx, creates the
// documentos table, then applies the idempotent index patches GORM's
// AutoMigrate does not express.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := almacen.MigrarEsquema(db); err != nil {
		return nil, fmt.Errorf("migrar esquema: %w", err)
	}
	if err := applySchemaPatches(db); err != nil {
		return nil, fmt.Errorf("schema patches: %w", err)
	}

	return db, nil
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot handle: the
// expression index used by the owner-path equality filter on tareas. Safe to
// re-run on an already-patched database.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_documentos_usuario') THEN
		    CREATE INDEX idx_documentos_usuario
		        ON documentos ((datos ->> 'usuario'))
		        WHERE coleccion = 'tareas';
		  END IF;
		END $$`,
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_documentos_correo') THEN
		    CREATE INDEX idx_documentos_correo
		        ON documentos ((datos ->> 'correo'))
		        WHERE coleccion = 'usuarios';
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
