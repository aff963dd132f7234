package memoria

import (
	"github.com/pkg/errors"
)

// ResultadoAcceso describe un acceso a memoria virtual y cómo se resolvió
type ResultadoAcceso struct {
	PID       int  `json:"pid"`
	Pagina    int  `json:"pagina"`
	Direccion int  `json:"direccion"`
	Marco     int  `json:"marco"` // Marco de RAM al terminar el acceso; -1 si la página sigue en SWAP
	Fallo     bool `json:"page_fault"`

	// Solo cuando hubo reemplazo
	Victima          *Ocupacion `json:"victima,omitempty"`
	MarcoSwapVictima int        `json:"marco_swap_victima"`
}

// AccederPaginaAleatoria accede a una página al azar de un proceso activo al azar.
// Devuelve nil sin error cuando no hay procesos activos.
func (s *Sistema) AccederPaginaAleatoria() (*ResultadoAcceso, error) {
	if len(s.orden) == 0 {
		return nil, nil
	}

	proceso := s.procesos[s.orden[s.rng.Intn(len(s.orden))]]
	pagina := s.rng.Intn(proceso.CantidadPaginas)
	desplazamiento := s.rng.Intn(s.tamPagina)

	return s.acceder(proceso, pagina, desplazamiento)
}

// AccederPagina accede a una página concreta de un proceso activo
func (s *Sistema) AccederPagina(pid int, pagina int) (*ResultadoAcceso, error) {
	proceso, existe := s.procesos[pid]
	if !existe {
		return nil, errors.Wrapf(ErrProcesoInexistente, "no existe el proceso P%d", pid)
	}
	if pagina < 0 || pagina >= proceso.CantidadPaginas {
		return nil, errors.Wrapf(ErrPaginaInvalida, "página %d del proceso P%d (tiene %d)", pagina, pid, proceso.CantidadPaginas)
	}

	return s.acceder(proceso, pagina, s.rng.Intn(s.tamPagina))
}

// acceder resuelve el acceso. Si la página está en SWAP es un fallo de página:
// la víctima es el marco ocupado de RAM de menor índice, que baja a un marco
// libre de SWAP, y la página pedida sube a ese marco de RAM.
func (s *Sistema) acceder(proceso *Proceso, pagina int, desplazamiento int) (*ResultadoAcceso, error) {
	// La dirección solo se informa, no afecta el estado
	direccion := pagina*s.tamPagina + desplazamiento
	entrada := &proceso.TablaPaginas[pagina]

	resultado := &ResultadoAcceso{
		PID:       proceso.PID,
		Pagina:    pagina,
		Direccion: direccion,
		Marco:     -1,
	}

	s.Registrar(NivelInfo, "Acceso a dirección virtual 0x%X (P%d, página %d)", direccion, proceso.PID, pagina)

	if entrada.Ubicacion == UbicacionRAM {
		resultado.Marco = entrada.Marco
		s.Registrar(NivelSuccess, "Página %d encontrada en RAM (frame %d)", pagina, entrada.Marco)
		return resultado, nil
	}

	resultado.Fallo = true
	s.estadisticas.FallosPagina++
	s.Registrar(NivelWarning, "PAGE FAULT: Página %d de P%d está en SWAP", pagina, proceso.PID)

	marcoVictima, hayVictima := s.ram.BuscarMarcoOcupado()
	if !hayVictima {
		return resultado, nil
	}

	marcoSwap, hayLibre := s.swap.BuscarMarcoLibre()
	if !hayLibre {
		s.Registrar(NivelWarning, "SWAP agotado: no hay marcos libres para bajar la víctima, P%d página %d sigue en SWAP",
			proceso.PID, pagina)
		return resultado, errors.Wrapf(ErrSwapAgotado, "fallo de página P%d página %d sin resolver", proceso.PID, pagina)
	}

	victima := s.ram.Ocupacion(marcoVictima)
	entradaVictima := &s.procesos[victima.PID].TablaPaginas[victima.Pagina]
	marcoSwapOrigen := entrada.Marco

	// Bajar la víctima a SWAP
	s.swap.Ocupar(marcoSwap, victima.PID, victima.Pagina)
	s.ram.Liberar(marcoVictima)
	entradaVictima.Ubicacion = UbicacionSWAP
	entradaVictima.Marco = marcoSwap

	// Subir la página pedida al marco que quedó libre
	s.swap.Liberar(marcoSwapOrigen)
	s.ram.Ocupar(marcoVictima, proceso.PID, pagina)
	entrada.Ubicacion = UbicacionRAM
	entrada.Marco = marcoVictima

	resultado.Marco = marcoVictima
	resultado.Victima = victima
	resultado.MarcoSwapVictima = marcoSwap

	s.Registrar(NivelWarning, "Swap realizado: P%d página %d → SWAP, P%d página %d → RAM (FIFO)",
		victima.PID, victima.Pagina, proceso.PID, pagina)

	return resultado, nil
}
