package almacen

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Memoria is the in-memory BaseDeDatos used as the test double and for local
// runs without a database. Documents are stored as JSON so values round-trip
// with the same types the GormStore produces (timestamps come back as
// strings, numbers as float64).
type Memoria struct {
	mu          sync.RWMutex
	colecciones map[string]map[string][]byte // coleccion → id → documento JSON
	cerrado     bool
}

func NewMemoria() *Memoria {
	return &Memoria{colecciones: make(map[string]map[string][]byte)}
}

func (m *Memoria) Obtener(_ context.Context, coleccion string, filtros map[string]any) ([]Documento, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var docs []Documento
	for id, crudo := range m.colecciones[coleccion] {
		datos, err := decodificar(crudo)
		if err != nil {
			return nil, err
		}
		if coincide(datos, filtros) {
			docs = append(docs, Documento{ID: id, Datos: datos})
		}
	}
	return docs, nil
}

func (m *Memoria) ObtenerPorID(_ context.Context, coleccion, id string) (*Documento, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	crudo, existe := m.colecciones[coleccion][id]
	if !existe {
		return nil, nil
	}
	datos, err := decodificar(crudo)
	if err != nil {
		return nil, err
	}
	return &Documento{ID: id, Datos: datos}, nil
}

func (m *Memoria) Guardar(ctx context.Context, coleccion string, datos map[string]any) (string, error) {
	id := uuid.NewString()
	if err := m.GuardarConID(ctx, coleccion, id, datos); err != nil {
		return "", err
	}
	return id, nil
}

func (m *Memoria) GuardarConID(_ context.Context, coleccion, id string, datos map[string]any) error {
	crudo, err := json.Marshal(datos)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.colecciones[coleccion] == nil {
		m.colecciones[coleccion] = make(map[string][]byte)
	}
	m.colecciones[coleccion][id] = crudo
	return nil
}

func (m *Memoria) ActualizarPorID(_ context.Context, coleccion, id string, parcial map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	crudo, existe := m.colecciones[coleccion][id]
	if !existe {
		return gorm.ErrRecordNotFound
	}
	datos, err := decodificar(crudo)
	if err != nil {
		return err
	}
	for campo, valor := range parcial {
		datos[campo] = valor
	}
	nuevo, err := json.Marshal(datos)
	if err != nil {
		return err
	}
	m.colecciones[coleccion][id] = nuevo
	return nil
}

func (m *Memoria) EliminarPorID(_ context.Context, coleccion, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.colecciones[coleccion], id)
	return nil
}

func (m *Memoria) Conectado() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return !m.cerrado
}

func (m *Memoria) Cerrar() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cerrado = true
	return nil
}

func decodificar(crudo []byte) (map[string]any, error) {
	datos := make(map[string]any)
	if err := json.Unmarshal(crudo, &datos); err != nil {
		return nil, err
	}
	return datos, nil
}

func coincide(datos map[string]any, filtros map[string]any) bool {
	for campo, valor := range filtros {
		if datos[campo] != valor {
			return false
		}
	}
	return true
}
