package adaptador

import "time"

// Tiempo abstracts the creation-timestamp source so tests can freeze it.
type Tiempo interface {
	Ahora() time.Time
}

// TiempoSistema reads the system clock in UTC.
type TiempoSistema struct{}

func (TiempoSistema) Ahora() time.Time { return time.Now().UTC() }
