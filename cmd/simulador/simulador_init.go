package main

import (
	"os"

	"github.com/pkg/errors"

	"github.com/sisoputnfrba/tp-2025-2c-SimuladorPaginacion/memoria"
	"github.com/sisoputnfrba/tp-2025-2c-SimuladorPaginacion/planificador"
	"github.com/sisoputnfrba/tp-2025-2c-SimuladorPaginacion/utils"
)

var (
	modulo *utils.Modulo
	plan   *planificador.Planificador
)

// cargarConfiguracion lee y valida el archivo de configuración.
// Los campos ausentes toman los valores por defecto del simulador.
func cargarConfiguracion(rutaConfig string) (*SimuladorConfig, error) {
	cfg, err := utils.CargarConfiguracion[SimuladorConfig](rutaConfig)
	if err != nil {
		return nil, err
	}

	completarPorDefecto(cfg)

	if err := cfg.Validar(); err != nil {
		return nil, errors.Wrapf(err, "archivo %s", rutaConfig)
	}
	return cfg, nil
}

func completarPorDefecto(cfg *SimuladorConfig) {
	porDefecto := memoria.ConfigPorDefecto()

	if cfg.IPSimulador == "" {
		cfg.IPSimulador = "127.0.0.1"
	}
	if cfg.PuertoSimulador == 0 {
		cfg.PuertoSimulador = 8010
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.DumpPath == "" {
		cfg.DumpPath = "./dumps"
	}
	if cfg.MemoriaFisicaMB == 0 {
		cfg.MemoriaFisicaMB = porDefecto.MemoriaFisicaMB
	}
	if cfg.TamPaginaKB == 0 {
		cfg.TamPaginaKB = porDefecto.TamPaginaKB
	}
	if cfg.MinProcesoMB == 0 && cfg.MaxProcesoMB == 0 {
		cfg.MinProcesoMB = porDefecto.MinProcesoMB
		cfg.MaxProcesoMB = porDefecto.MaxProcesoMB
	}
}

func inicializarModulo(rutaConfig string) error {
	// Verificar que el archivo existe
	if _, err := os.Stat(rutaConfig); os.IsNotExist(err) {
		return errors.Errorf("el archivo de configuración no existe: %s", rutaConfig)
	}

	cfg, err := cargarConfiguracion(rutaConfig)
	if err != nil {
		return err
	}
	config = cfg

	// Actualizar logger con configuración del archivo
	utils.InicializarLogger(config.LogLevel, "Simulador")
	utils.InfoLog.Info("Configuración cargada",
		"nivel_log", config.LogLevel,
		"config_path", rutaConfig,
		"memoria_fisica_mb", config.MemoriaFisicaMB,
		"tam_pagina_kb", config.TamPaginaKB,
		"rango_procesos_mb", []float64{config.MinProcesoMB, config.MaxProcesoMB})

	// Verificar directorio de dumps
	if err := os.MkdirAll(config.DumpPath, 0755); err != nil {
		utils.InfoLog.Warn("No se pudo crear directorio para dumps", "error", err)
	} else {
		utils.InfoLog.Info("Directorio para dumps verificado", "ruta", config.DumpPath)
	}

	plan = planificador.NuevoPlanificador(config.Config)

	modulo = utils.NuevoModulo("Simulador", rutaConfig)
	registrarHandlers(modulo, plan, config.DumpPath)
	modulo.IniciarServidor(config.IPSimulador, config.PuertoSimulador)

	return nil
}
