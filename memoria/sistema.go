package memoria

import (
	"fmt"
	"math/rand"

	"github.com/sisoputnfrba/tp-2025-2c-SimuladorPaginacion/utils"
)

// Sistema es el estado completo de una simulación: pools, procesos activos,
// reloj, estadísticas y registro de eventos. No es seguro para uso concurrente;
// el planificador serializa el acceso.
type Sistema struct {
	tamPagina        int // bytes
	memoriaVirtualMB int

	ram  *PoolMarcos
	swap *PoolMarcos

	procesos map[int]*Proceso
	orden    []int // PIDs activos en orden de creación

	reloj      int
	proximoPID int

	estadisticas Estadisticas
	registro     *RegistroEventos
	rng          *rand.Rand
}

// NuevoSistema inicializa una simulación a partir de la configuración.
// El factor de memoria virtual se sortea acá, una sola vez, salvo que venga fijo.
func NuevoSistema(config Config, rng *rand.Rand) *Sistema {
	factor := config.FactorVirtual
	if factor == 0 {
		factor = MinFactorVirtual + rng.Float64()*(MaxFactorVirtual-MinFactorVirtual)
	}

	memoriaVirtualMB := config.MemoriaVirtualMB(factor)
	s := NuevoSistemaConMarcos(config.MarcosRAM(), config.MarcosSwap(memoriaVirtualMB), config.TamPaginaBytes(), rng)
	s.memoriaVirtualMB = memoriaVirtualMB

	utils.InfoLog.Info(fmt.Sprintf("Simulación inicializada: RAM=%dMB, Virtual=%dMB, Página=%dKB",
		config.MemoriaFisicaMB, memoriaVirtualMB, config.TamPaginaKB),
		"factor_virtual", factor,
		"marcos_ram", s.ram.Capacidad(),
		"marcos_swap", s.swap.Capacidad())

	return s
}

// NuevoSistemaConMarcos crea una simulación con capacidades explícitas
func NuevoSistemaConMarcos(marcosRAM int, marcosSwap int, tamPaginaBytes int, rng *rand.Rand) *Sistema {
	return &Sistema{
		tamPagina:  tamPaginaBytes,
		ram:        NuevoPoolMarcos(UbicacionRAM, marcosRAM),
		swap:       NuevoPoolMarcos(UbicacionSWAP, marcosSwap),
		procesos:   make(map[int]*Proceso),
		proximoPID: 1,
		registro:   NuevoRegistroEventos(MaxEntradasLog),
		rng:        rng,
	}
}

func (s *Sistema) Reloj() int {
	return s.reloj
}

// AvanzarReloj suma un segundo simulado y devuelve el nuevo valor
func (s *Sistema) AvanzarReloj() int {
	s.reloj++
	return s.reloj
}

func (s *Sistema) TamPagina() int {
	return s.tamPagina
}

func (s *Sistema) MemoriaVirtualMB() int {
	return s.memoriaVirtualMB
}

func (s *Sistema) RAM() *PoolMarcos {
	return s.ram
}

func (s *Sistema) SWAP() *PoolMarcos {
	return s.swap
}

func (s *Sistema) Registro() *RegistroEventos {
	return s.registro
}

// CantidadProcesos devuelve la cantidad de procesos activos
func (s *Sistema) CantidadProcesos() int {
	return len(s.orden)
}

// Proceso devuelve una copia del proceso activo con ese PID
func (s *Sistema) Proceso(pid int) (*Proceso, bool) {
	proceso, existe := s.procesos[pid]
	if !existe {
		return nil, false
	}
	return proceso.copiar(), true
}

// Procesos devuelve copias de los procesos activos en orden de creación
func (s *Sistema) Procesos() []*Proceso {
	procesos := make([]*Proceso, 0, len(s.orden))
	for _, pid := range s.orden {
		procesos = append(procesos, s.procesos[pid].copiar())
	}
	return procesos
}

// Registrar agrega un evento al registro y lo replica en el log del módulo
func (s *Sistema) Registrar(nivel NivelLog, formato string, args ...interface{}) {
	mensaje := fmt.Sprintf(formato, args...)
	s.registro.Agregar(s.reloj, nivel, mensaje)

	switch nivel {
	case NivelError:
		utils.ErrorLog.Error(mensaje, "reloj", s.reloj)
	case NivelWarning:
		utils.InfoLog.Warn(mensaje, "reloj", s.reloj)
	default:
		utils.InfoLog.Info(mensaje, "reloj", s.reloj)
	}
}
