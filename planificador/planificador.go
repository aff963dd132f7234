package planificador

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sisoputnfrba/tp-2025-2c-SimuladorPaginacion/memoria"
	"github.com/sisoputnfrba/tp-2025-2c-SimuladorPaginacion/utils"
)

// Planificador maneja el reloj de la simulación y dispara creaciones,
// finalizaciones y accesos. Cada tick se resuelve completo en un
// sim.SerialEngine antes de liberar el mutex.
type Planificador struct {
	mu sync.Mutex

	config  Config
	rng     *rand.Rand
	sistema *memoria.Sistema
	motor   *sim.SerialEngine

	ejecutando bool
	pausado    bool
	detenido   bool // terminó por falta de memoria
	causa      error

	ultimaCreacion int
	ultimoEvento   int
}

// NuevoPlanificador crea el planificador con una simulación inicializada y sin correr
func NuevoPlanificador(config Config) *Planificador {
	semilla := config.Semilla
	if semilla == 0 {
		semilla = time.Now().UnixNano()
	}

	p := &Planificador{
		config: config,
		rng:    rand.New(rand.NewSource(semilla)),
	}
	p.inicializar()

	utils.InfoLog.Info("Planificador inicializado",
		"semilla", semilla,
		"intervalo_tick", config.IntervaloTick().String(),
		"detener_sin_marcos", config.DetenerSinMarcos)

	return p
}

// inicializar descarta todo el estado y lo vuelve a armar desde la configuración
func (p *Planificador) inicializar() {
	p.sistema = memoria.NuevoSistema(p.config.Config, p.rng)
	p.motor = sim.NewSerialEngine()
	p.ultimaCreacion = 0
	p.ultimoEvento = 0
	p.detenido = false
	p.causa = nil
}

// Iniciar arranca la simulación; si no estaba corriendo la inicializa de nuevo
func (p *Planificador) Iniciar() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ejecutando {
		p.inicializar()
	}
	p.ejecutando = true
	p.pausado = false

	utils.InfoLog.Info("Simulación iniciada")
}

// AlternarPausa pausa o reanuda sin tocar reloj ni temporizadores.
// Devuelve si quedó pausada.
func (p *Planificador) AlternarPausa() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ejecutando {
		return false
	}
	p.pausado = !p.pausado

	utils.InfoLog.Info("Pausa alternada", "pausado", p.pausado, "reloj", p.sistema.Reloj())
	return p.pausado
}

// Reiniciar detiene la simulación y la reinicializa
func (p *Planificador) Reiniciar() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.ejecutando = false
	p.pausado = false
	p.inicializar()

	utils.InfoLog.Info("Simulación reiniciada")
}

// Tick avanza un segundo simulado. Devuelve false si la simulación no está
// corriendo o está pausada.
func (p *Planificador) Tick() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ejecutando || p.pausado {
		return false
	}

	reloj := p.sistema.AvanzarReloj()
	p.motor.Schedule(nuevoEventoTick(reloj, p))

	// Run vuelve cuando la cola queda vacía: el tick y sus accesos diferidos
	if err := p.motor.Run(); err != nil {
		utils.ErrorLog.Error("Error procesando eventos del tick", "reloj", reloj, "error", err.Error())
	}

	if p.config.DetenerSinMarcos && p.ejecutando && p.sistema.SinMarcosLibres() {
		p.sistema.Registrar(memoria.NivelError, "ERROR: No hay memoria disponible en RAM ni SWAP")
		p.detener(errors.Wrap(memoria.ErrSinMemoria, "RAM y SWAP sin marcos libres"))
	}

	return true
}

// Handle procesa los eventos del motor
func (p *Planificador) Handle(e sim.Event) error {
	switch evt := e.(type) {
	case *eventoTick:
		p.procesarTick(evt)
	case *eventoAcceso:
		p.procesarAcceso()
	default:
		return errors.Errorf("evento desconocido: %T", e)
	}
	return nil
}

func (p *Planificador) procesarTick(evt *eventoTick) {
	reloj := evt.reloj

	// Crear proceso cada 2 segundos
	if reloj-p.ultimaCreacion >= IntervaloCreacion {
		_, err := p.sistema.CrearProceso(p.config.MinProcesoMB, p.config.MaxProcesoMB)
		p.ultimaCreacion = reloj
		if err != nil {
			p.detener(err)
		}
	}

	// Eventos cada 5 segundos después de los 30 segundos
	if reloj >= InicioEventos && reloj-p.ultimoEvento >= IntervaloEventos {
		p.sistema.FinalizarProcesoAleatorio()
		p.motor.Schedule(nuevoEventoAcceso(evt.Time(), p))
		p.ultimoEvento = reloj
	}
}

func (p *Planificador) procesarAcceso() {
	// SWAP agotado ya queda en el registro de eventos
	if _, err := p.sistema.AccederPaginaAleatoria(); err != nil {
		utils.InfoLog.Warn("Acceso sin resolver", "error", err.Error())
	}

	p.logEstadoMemoria()
}

// detener corta la simulación; solo Reiniciar o Iniciar la vuelven a armar
func (p *Planificador) detener(causa error) {
	p.ejecutando = false
	p.pausado = false
	p.detenido = true
	p.causa = causa

	utils.ErrorLog.Error("Simulación terminada", "reloj", p.sistema.Reloj(), "causa", causa.Error())
	p.logEstadoMemoria()
}

func (p *Planificador) logEstadoMemoria() {
	stats := p.sistema.Estadisticas()
	utils.InfoLog.Info("Estado de memoria",
		"ram", p.sistema.RAM().Ocupados(),
		"ram_total", p.sistema.RAM().Capacidad(),
		"uso_ram", p.sistema.UsoRAM(),
		"swap", p.sistema.SWAP().Ocupados(),
		"swap_total", p.sistema.SWAP().Capacidad(),
		"uso_swap", p.sistema.UsoSWAP(),
		"procesos_activos", p.sistema.CantidadProcesos(),
		"page_faults", stats.FallosPagina,
		"procesos_creados", stats.ProcesosCreados,
		"procesos_finalizados", stats.ProcesosFinalizados)
}

// Correr produce un tick por intervalo hasta que se cancele el contexto
func (p *Planificador) Correr(ctx context.Context) {
	ticker := time.NewTicker(p.config.IntervaloTick())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			utils.InfoLog.Info("Planificador finalizado")
			return
		case <-ticker.C:
			p.Tick()
		}
	}
}
