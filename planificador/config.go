package planificador

import (
	"time"

	"github.com/sisoputnfrba/tp-2025-2c-SimuladorPaginacion/memoria"
)

const (
	IntervaloCreacion = 2  // segundos entre creaciones de procesos
	InicioEventos     = 30 // segundo a partir del cual se finalizan procesos
	IntervaloEventos  = 5  // segundos entre finalización + acceso

	intervaloTickPorDefecto = time.Second
)

// Config agrega al simulador los parámetros del planificador
type Config struct {
	memoria.Config
	IntervaloTickMs  int   `json:"INTERVALO_TICK_MS"`
	Semilla          int64 `json:"SEMILLA"`            // 0 = semilla por tiempo
	DetenerSinMarcos bool  `json:"DETENER_SIN_MARCOS"` // detener cuando RAM y SWAP quedan llenas
}

// IntervaloTick es el tiempo real entre ticks
func (c Config) IntervaloTick() time.Duration {
	if c.IntervaloTickMs <= 0 {
		return intervaloTickPorDefecto
	}
	return time.Duration(c.IntervaloTickMs) * time.Millisecond
}
