package memoria

// ProcesoVista es la vista de un proceso activo dentro de una instantánea
type ProcesoVista struct {
	Proceso
	PaginasRAM  int `json:"paginas_ram"`
	PaginasSWAP int `json:"paginas_swap"`
}

// Instantanea es una copia del estado de la simulación para la capa de presentación
type Instantanea struct {
	Reloj            int            `json:"reloj"`
	MemoriaVirtualMB int            `json:"memoria_virtual_mb"`
	TamPagina        int            `json:"tam_pagina"`
	RAM              []*Ocupacion   `json:"ram"`
	SWAP             []*Ocupacion   `json:"swap"`
	OcupadosRAM      int            `json:"ocupados_ram"`
	OcupadosSWAP     int            `json:"ocupados_swap"`
	UsoRAM           float64        `json:"uso_ram"`
	UsoSWAP          float64        `json:"uso_swap"`
	Procesos         []ProcesoVista `json:"procesos"`
	Estadisticas     Estadisticas   `json:"estadisticas"`
	Log              []EntradaLog   `json:"log"`
}

// Instantanea copia el estado actual. El log viene del más nuevo al más viejo,
// limitado a ultimos entradas (0 = todas las retenidas).
func (s *Sistema) Instantanea(ultimos int) Instantanea {
	procesos := make([]ProcesoVista, 0, len(s.orden))
	for _, proceso := range s.Procesos() {
		procesos = append(procesos, ProcesoVista{
			Proceso:     *proceso,
			PaginasRAM:  proceso.PaginasEn(UbicacionRAM),
			PaginasSWAP: proceso.PaginasEn(UbicacionSWAP),
		})
	}

	return Instantanea{
		Reloj:            s.reloj,
		MemoriaVirtualMB: s.memoriaVirtualMB,
		TamPagina:        s.tamPagina,
		RAM:              s.ram.Contenido(),
		SWAP:             s.swap.Contenido(),
		OcupadosRAM:      s.ram.Ocupados(),
		OcupadosSWAP:     s.swap.Ocupados(),
		UsoRAM:           s.UsoRAM(),
		UsoSWAP:          s.UsoSWAP(),
		Procesos:         procesos,
		Estadisticas:     s.estadisticas,
		Log:              s.registro.Ultimos(ultimos),
	}
}
