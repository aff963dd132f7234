package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/sisoputnfrba/tp-2025-2c-SimuladorPaginacion/planificador"
	"github.com/sisoputnfrba/tp-2025-2c-SimuladorPaginacion/utils"
)

var operaciones = map[string]int{
	"iniciar":   utils.MensajeIniciar,
	"pausar":    utils.MensajePausar,
	"reiniciar": utils.MensajeReiniciar,
	"estado":    utils.MensajeEstado,
	"dump":      utils.MensajeMemoryDump,
}

func main() {
	if len(os.Args) < 4 {
		fmt.Fprintf(os.Stderr, "Uso: %s <ip> <puerto> <iniciar|pausar|reiniciar|estado|dump>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Ejemplo: %s 127.0.0.1 8010 estado\n", os.Args[0])
		os.Exit(1)
	}

	utils.InicializarLogger("warn", "Cliente")

	puerto, err := strconv.Atoi(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Puerto inválido: %s\n", os.Args[2])
		os.Exit(1)
	}

	cliente := utils.NewHTTPClient(os.Args[1], puerto, "Cliente->Simulador")
	if err := ejecutar(cliente, os.Args[3], os.Stdout); err != nil {
		utils.ErrorLog.Error("Error ejecutando operación", "operacion", os.Args[3], "error", err.Error())
		os.Exit(1)
	}
}

// ejecutar envía la operación al simulador y escribe la respuesta
func ejecutar(cliente *utils.HTTPClient, operacion string, salida io.Writer) error {
	tipo, existe := operaciones[operacion]
	if !existe {
		return errors.Errorf("operación desconocida: %s", operacion)
	}

	if tipo == utils.MensajeEstado {
		var estado planificador.Estado
		if err := cliente.EnviarHTTPMensaje(tipo, "default", map[string]interface{}{"ultimos": 20}, &estado); err != nil {
			return err
		}
		imprimirEstado(salida, estado)
		return nil
	}

	var respuesta map[string]interface{}
	if err := cliente.EnviarHTTPMensaje(tipo, "default", nil, &respuesta); err != nil {
		return err
	}
	if mensajeError, hayError := respuesta["error"]; hayError {
		return errors.Errorf("%v", mensajeError)
	}
	fmt.Fprintf(salida, "%s: %v\n", operacion, respuesta)
	return nil
}

// imprimirEstado muestra el reporte de memoria y el tail del log
func imprimirEstado(w io.Writer, estado planificador.Estado) {
	condicion := "detenida"
	switch {
	case estado.Ejecutando && estado.Pausado:
		condicion = "pausada"
	case estado.Ejecutando:
		condicion = "corriendo"
	case estado.Detenido:
		condicion = "terminada: " + estado.Causa
	}

	fmt.Fprintf(w, "\n========== ESTADO DE MEMORIA ==========\n")
	fmt.Fprintf(w, "Simulación: %s (t=%ds)\n", condicion, estado.Reloj)
	fmt.Fprintf(w, "RAM: %d/%d páginas (%.1f%%)\n", estado.OcupadosRAM, len(estado.RAM), estado.UsoRAM)
	fmt.Fprintf(w, "SWAP: %d/%d páginas (%.1f%%)\n", estado.OcupadosSWAP, len(estado.SWAP), estado.UsoSWAP)
	fmt.Fprintf(w, "Procesos activos: %d\n", len(estado.Procesos))
	fmt.Fprintf(w, "Page Faults: %d\n", estado.Estadisticas.FallosPagina)
	fmt.Fprintf(w, "Procesos creados: %d\n", estado.Estadisticas.ProcesosCreados)
	fmt.Fprintf(w, "Procesos finalizados: %d\n", estado.Estadisticas.ProcesosFinalizados)
	fmt.Fprintf(w, "=======================================\n")

	for _, proceso := range estado.Procesos {
		fmt.Fprintf(w, "P%d  %d KB  páginas=%d  RAM=%d  SWAP=%d\n",
			proceso.PID, proceso.TamanioBytes/1024, proceso.CantidadPaginas, proceso.PaginasRAM, proceso.PaginasSWAP)
	}

	fmt.Fprintf(w, "\n---------- Log de eventos ----------\n")
	for _, entrada := range estado.Log {
		fmt.Fprintf(w, "[%ds] %-7s %s\n", entrada.Tiempo, entrada.Nivel, entrada.Mensaje)
	}
}
