package main

import (
	"github.com/sisoputnfrba/tp-2025-2c-SimuladorPaginacion/planificador"
)

// SimuladorConfig representa la configuración del módulo Simulador
type SimuladorConfig struct {
	IPSimulador     string `json:"IP_SIMULADOR"`
	PuertoSimulador int    `json:"PUERTO_SIMULADOR"`
	LogLevel        string `json:"LOG_LEVEL"`
	DumpPath        string `json:"DUMP_PATH"` // Ruta para los archivos de dump
	planificador.Config
}

var config *SimuladorConfig
