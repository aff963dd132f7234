package planificador

import (
	"github.com/sarchlab/akita/v4/sim"
)

// retardoAcceso separa el acceso de la finalización que lo origina dentro del mismo tick
const retardoAcceso sim.VTimeInSec = 0.1

// eventoTick es un segundo de simulación
type eventoTick struct {
	*sim.EventBase
	reloj int
}

func nuevoEventoTick(reloj int, handler sim.Handler) *eventoTick {
	return &eventoTick{
		EventBase: sim.NewEventBase(sim.VTimeInSec(reloj), handler),
		reloj:     reloj,
	}
}

// eventoAcceso es el acceso a memoria que sigue a una finalización
type eventoAcceso struct {
	*sim.EventBase
}

func nuevoEventoAcceso(tiempo sim.VTimeInSec, handler sim.Handler) *eventoAcceso {
	return &eventoAcceso{
		EventBase: sim.NewEventBase(tiempo+retardoAcceso, handler),
	}
}
