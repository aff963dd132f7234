package memoria

import (
	"math"

	"github.com/pkg/errors"

	"github.com/sisoputnfrba/tp-2025-2c-SimuladorPaginacion/utils"
)

// CrearProceso sortea un tamaño en [minMB, maxMB) y crea el proceso.
// El tamaño se trunca a KB enteros.
func (s *Sistema) CrearProceso(minMB float64, maxMB float64) (*Proceso, error) {
	tamanioMB := minMB
	if maxMB > minMB {
		tamanioMB = minMB + s.rng.Float64()*(maxMB-minMB)
	}
	tamanioKB := int(math.Floor(tamanioMB * 1024))

	return s.CrearProcesoConTamanio(tamanioKB * 1024)
}

// CrearProcesoConTamanio ubica todas las páginas del proceso, primero en RAM
// y el resto en SWAP. Si no entran todas no se modifica nada y devuelve ErrSinMemoria.
func (s *Sistema) CrearProcesoConTamanio(tamanioBytes int) (*Proceso, error) {
	numPaginas := s.calcularNumeroPaginas(tamanioBytes)
	pid := s.proximoPID

	libresRAM := s.ram.Libres()
	libresSwap := s.swap.Libres()

	// Verificar si hay suficientes marcos libres entre ambos pools
	if numPaginas > libresRAM+libresSwap {
		s.Registrar(NivelError, "ERROR: No hay suficiente memoria para proceso P%d (necesita %d páginas)", pid, numPaginas)
		return nil, errors.Wrapf(ErrSinMemoria, "el proceso P%d necesita %d páginas y hay %d marcos libres",
			pid, numPaginas, libresRAM+libresSwap)
	}

	proceso := &Proceso{
		PID:             pid,
		TamanioBytes:    tamanioBytes,
		CantidadPaginas: numPaginas,
		TablaPaginas:    make([]EntradaTabla, 0, numPaginas),
	}

	for pagina := 0; pagina < numPaginas; pagina++ {
		pool := s.swap
		if libresRAM > 0 {
			pool = s.ram
			libresRAM--
		}

		// Ya se verificó el espacio: siempre hay un marco libre en el pool elegido
		marco, _ := pool.BuscarMarcoLibre()
		pool.Ocupar(marco, pid, pagina)

		proceso.TablaPaginas = append(proceso.TablaPaginas, EntradaTabla{
			Pagina:    pagina,
			Marco:     marco,
			Ubicacion: pool.Nombre(),
		})
	}

	s.proximoPID++
	s.procesos[pid] = proceso
	s.orden = append(s.orden, pid)
	s.estadisticas.ProcesosCreados++

	s.Registrar(NivelSuccess, "Proceso P%d creado: %dKB (%d páginas)", pid, tamanioBytes/1024, numPaginas)

	utils.InfoLog.Debug("Páginas ubicadas", "pid", pid,
		"en_ram", proceso.PaginasEn(UbicacionRAM),
		"en_swap", proceso.PaginasEn(UbicacionSWAP))

	return proceso.copiar(), nil
}

// FinalizarProcesoAleatorio finaliza un proceso activo elegido al azar.
// Si no hay procesos activos no hace nada y devuelve false.
func (s *Sistema) FinalizarProcesoAleatorio() (*Proceso, bool) {
	if len(s.orden) == 0 {
		return nil, false
	}

	pid := s.orden[s.rng.Intn(len(s.orden))]
	proceso := s.procesos[pid]
	s.liberarMemoriaProceso(proceso)

	return proceso, true
}

// FinalizarProceso finaliza el proceso activo con ese PID
func (s *Sistema) FinalizarProceso(pid int) error {
	proceso, existe := s.procesos[pid]
	if !existe {
		return errors.Wrapf(ErrProcesoInexistente, "no existe el proceso P%d", pid)
	}

	s.liberarMemoriaProceso(proceso)
	return nil
}

// liberarMemoriaProceso libera todos los marcos del proceso y lo quita de los activos
func (s *Sistema) liberarMemoriaProceso(proceso *Proceso) {
	for _, entrada := range proceso.TablaPaginas {
		if entrada.Ubicacion == UbicacionRAM {
			s.ram.Liberar(entrada.Marco)
		} else {
			s.swap.Liberar(entrada.Marco)
		}
	}

	delete(s.procesos, proceso.PID)
	for i, pid := range s.orden {
		if pid == proceso.PID {
			s.orden = append(s.orden[:i], s.orden[i+1:]...)
			break
		}
	}
	s.estadisticas.ProcesosFinalizados++

	s.Registrar(NivelInfo, "Proceso P%d finalizado (liberó %d páginas)", proceso.PID, proceso.CantidadPaginas)
}

// calcularNumeroPaginas redondea hacia arriba. Todo proceso ocupa al menos una página.
func (s *Sistema) calcularNumeroPaginas(tamanio int) int {
	numPaginas := (tamanio + s.tamPagina - 1) / s.tamPagina
	if numPaginas < 1 {
		numPaginas = 1
	}
	return numPaginas
}
