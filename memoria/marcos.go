package memoria

import (
	"github.com/sisoputnfrba/tp-2025-2c-SimuladorPaginacion/utils"
)

// PoolMarcos es un arreglo de marcos de capacidad fija (RAM o SWAP).
// Un marco en nil está libre.
type PoolMarcos struct {
	nombre Ubicacion
	marcos []*Ocupacion
	enUso  int
}

// NuevoPoolMarcos crea un pool con todos sus marcos libres
func NuevoPoolMarcos(nombre Ubicacion, capacidad int) *PoolMarcos {
	if capacidad < 0 {
		capacidad = 0
	}
	return &PoolMarcos{
		nombre: nombre,
		marcos: make([]*Ocupacion, capacidad),
	}
}

func (p *PoolMarcos) Nombre() Ubicacion {
	return p.nombre
}

func (p *PoolMarcos) Capacidad() int {
	return len(p.marcos)
}

// BuscarMarcoLibre devuelve el marco libre de menor índice
func (p *PoolMarcos) BuscarMarcoLibre() (int, bool) {
	for i, ocupacion := range p.marcos {
		if ocupacion == nil {
			return i, true
		}
	}
	return 0, false
}

// BuscarMarcoOcupado devuelve el marco ocupado de menor índice
func (p *PoolMarcos) BuscarMarcoOcupado() (int, bool) {
	for i, ocupacion := range p.marcos {
		if ocupacion != nil {
			return i, true
		}
	}
	return 0, false
}

// Ocupar asigna el marco a la página de un proceso
func (p *PoolMarcos) Ocupar(marco int, pid int, pagina int) {
	if p.marcos[marco] == nil {
		p.enUso++
	}
	p.marcos[marco] = &Ocupacion{PID: pid, Pagina: pagina}

	utils.InfoLog.Debug("Marco asignado", "pool", p.nombre, "marco", marco, "pid", pid, "pagina", pagina)
}

// Liberar marca el marco como libre. El llamador garantiza que ninguna
// entrada de tabla de páginas sigue apuntando a él.
func (p *PoolMarcos) Liberar(marco int) {
	if p.marcos[marco] == nil {
		return
	}
	p.marcos[marco] = nil
	p.enUso--

	utils.InfoLog.Debug("Marco liberado", "pool", p.nombre, "marco", marco)
}

// Ocupacion devuelve una copia del contenido del marco, o nil si está libre
func (p *PoolMarcos) Ocupacion(marco int) *Ocupacion {
	if marco < 0 || marco >= len(p.marcos) || p.marcos[marco] == nil {
		return nil
	}
	ocupacion := *p.marcos[marco]
	return &ocupacion
}

func (p *PoolMarcos) Ocupados() int {
	return p.enUso
}

func (p *PoolMarcos) Libres() int {
	return len(p.marcos) - p.enUso
}

// Porcentaje devuelve el uso del pool entre 0 y 100
func (p *PoolMarcos) Porcentaje() float64 {
	if len(p.marcos) == 0 {
		return 0
	}
	return float64(p.enUso) / float64(len(p.marcos)) * 100
}

// Contenido devuelve una copia de los marcos en orden de índice
func (p *PoolMarcos) Contenido() []*Ocupacion {
	contenido := make([]*Ocupacion, len(p.marcos))
	for i := range p.marcos {
		contenido[i] = p.Ocupacion(i)
	}
	return contenido
}
