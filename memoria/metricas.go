package memoria

// Estadisticas son los contadores de la simulación. Solo se reinician con la simulación.
type Estadisticas struct {
	FallosPagina        int `json:"page_faults"`
	ProcesosCreados     int `json:"procesos_creados"`
	ProcesosFinalizados int `json:"procesos_finalizados"`
}

func (s *Sistema) Estadisticas() Estadisticas {
	return s.estadisticas
}

// UsoRAM devuelve el porcentaje de marcos de RAM ocupados
func (s *Sistema) UsoRAM() float64 {
	return s.ram.Porcentaje()
}

// UsoSWAP devuelve el porcentaje de marcos de SWAP ocupados
func (s *Sistema) UsoSWAP() float64 {
	return s.swap.Porcentaje()
}

// SinMarcosLibres indica que RAM y SWAP están completamente ocupadas
func (s *Sistema) SinMarcosLibres() bool {
	return s.ram.Libres() == 0 && s.swap.Libres() == 0
}
