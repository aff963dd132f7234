package planificador

import (
	"github.com/pkg/errors"

	"github.com/sisoputnfrba/tp-2025-2c-SimuladorPaginacion/memoria"
)

// Estado es la instantánea que se expone a la capa de presentación
type Estado struct {
	memoria.Instantanea
	Ejecutando bool   `json:"ejecutando"`
	Pausado    bool   `json:"pausado"`
	Detenido   bool   `json:"detenido"`
	Causa      string `json:"causa,omitempty"`
}

// Estado copia el estado actual con los ultimos eventos del registro
func (p *Planificador) Estado(ultimos int) Estado {
	p.mu.Lock()
	defer p.mu.Unlock()

	estado := Estado{
		Instantanea: p.sistema.Instantanea(ultimos),
		Ejecutando:  p.ejecutando,
		Pausado:     p.pausado,
		Detenido:    p.detenido,
	}
	if p.causa != nil {
		estado.Causa = p.causa.Error()
	}
	return estado
}

// Capacidades devuelve la cantidad de marcos de RAM y SWAP y el tamaño de página
func (p *Planificador) Capacidades() (marcosRAM int, marcosSwap int, tamPagina int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.sistema.RAM().Capacidad(), p.sistema.SWAP().Capacidad(), p.sistema.TamPagina()
}

// CrearProceso crea un proceso fuera del ciclo de ticks. Con tamanioBytes <= 0
// se sortea el tamaño del rango configurado. La falta de memoria detiene la simulación.
func (p *Planificador) CrearProceso(tamanioBytes int) (*memoria.Proceso, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var proceso *memoria.Proceso
	var err error
	if tamanioBytes > 0 {
		proceso, err = p.sistema.CrearProcesoConTamanio(tamanioBytes)
	} else {
		proceso, err = p.sistema.CrearProceso(p.config.MinProcesoMB, p.config.MaxProcesoMB)
	}

	if errors.Is(err, memoria.ErrSinMemoria) && p.ejecutando {
		p.detener(err)
	}
	return proceso, err
}

// FinalizarProceso finaliza el proceso indicado
func (p *Planificador) FinalizarProceso(pid int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.sistema.FinalizarProceso(pid)
}

// FinalizarProcesoAleatorio finaliza un proceso al azar; false si no había procesos
func (p *Planificador) FinalizarProcesoAleatorio() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	proceso, ok := p.sistema.FinalizarProcesoAleatorio()
	if !ok {
		return 0, false
	}
	return proceso.PID, true
}

// Acceder accede a una página concreta
func (p *Planificador) Acceder(pid int, pagina int) (*memoria.ResultadoAcceso, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.sistema.AccederPagina(pid, pagina)
}

// AccederAleatorio accede a una página al azar; nil si no hay procesos activos
func (p *Planificador) AccederAleatorio() (*memoria.ResultadoAcceso, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.sistema.AccederPaginaAleatoria()
}
