package memoria

// Ubicacion indica en qué pool reside una página
type Ubicacion string

const (
	UbicacionRAM  Ubicacion = "RAM"
	UbicacionSWAP Ubicacion = "SWAP"
)

// Ocupacion es el contenido de un marco ocupado
type Ocupacion struct {
	PID    int `json:"pid"`
	Pagina int `json:"pagina"`
}

// EntradaTabla representa una entrada en la tabla de páginas de un proceso
type EntradaTabla struct {
	Pagina    int       `json:"pagina"`
	Marco     int       `json:"marco"` // Índice dentro del pool indicado por Ubicacion
	Ubicacion Ubicacion `json:"ubicacion"`
}

// Proceso es un proceso activo con su tabla de páginas.
// TablaPaginas está indexada por número de página virtual.
type Proceso struct {
	PID             int            `json:"pid"`
	TamanioBytes    int            `json:"tamanio_bytes"`
	CantidadPaginas int            `json:"paginas"`
	TablaPaginas    []EntradaTabla `json:"tabla_paginas"`
}

// PaginasEn cuenta las páginas del proceso que residen en la ubicación dada
func (p *Proceso) PaginasEn(ubicacion Ubicacion) int {
	count := 0
	for _, entrada := range p.TablaPaginas {
		if entrada.Ubicacion == ubicacion {
			count++
		}
	}
	return count
}

func (p *Proceso) copiar() *Proceso {
	copia := *p
	copia.TablaPaginas = make([]EntradaTabla, len(p.TablaPaginas))
	copy(copia.TablaPaginas, p.TablaPaginas)
	return &copia
}
