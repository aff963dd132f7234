package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/sisoputnfrba/tp-2025-2c-SimuladorPaginacion/planificador"
	"github.com/sisoputnfrba/tp-2025-2c-SimuladorPaginacion/utils"
)

// crearMemoryDump escribe el estado completo de la simulación en un archivo JSON
func crearMemoryDump(p *planificador.Planificador, dumpPath string) (string, error) {
	estado := p.Estado(0)

	// Obtener timestamp
	timestamp := time.Now().Format("20060102-150405")
	nombreArchivo := fmt.Sprintf("%d-%s.json", estado.Reloj, timestamp)
	rutaCompleta := filepath.Join(dumpPath, nombreArchivo)

	utils.InfoLog.Info("Iniciando memory dump", "reloj", estado.Reloj, "archivo", rutaCompleta)

	if err := os.MkdirAll(dumpPath, 0755); err != nil {
		return "", errors.Wrap(err, "error al crear directorio para dumps")
	}

	contenido, err := json.MarshalIndent(estado, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "error al serializar el estado")
	}

	if err := os.WriteFile(rutaCompleta, contenido, 0644); err != nil {
		return "", errors.Wrapf(err, "error al escribir archivo de dump %s", rutaCompleta)
	}

	utils.InfoLog.Info("Memory dump completado", "archivo", nombreArchivo,
		"procesos", len(estado.Procesos), "tamanio_bytes", len(contenido))

	return rutaCompleta, nil
}

// handlerMemoryDump crea un volcado del estado de la simulación
func handlerMemoryDump(p *planificador.Planificador, dumpPath string) utils.HTTPHandlerFunc {
	return func(msg *utils.Mensaje) (interface{}, error) {
		ruta, err := crearMemoryDump(p, dumpPath)
		if err != nil {
			utils.ErrorLog.Error("Error al crear memory dump", "error", err.Error())
			return map[string]interface{}{
				"error": err.Error(),
			}, nil
		}

		return map[string]interface{}{
			"status":  "OK",
			"archivo": ruta,
		}, nil
	}
}
