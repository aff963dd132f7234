package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sisoputnfrba/tp-2025-2c-SimuladorPaginacion/utils"
)

func main() {
	// Verificar argumentos
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Uso: %s <archivo_configuracion> [--iniciar]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Ejemplo: %s configs/simulador-config.json --iniciar\n", os.Args[0])
		os.Exit(1)
	}

	// Inicializar logger ANTES de usarlo
	utils.InicializarLogger("INFO", "Simulador")
	utils.InfoLog.Info("Iniciando módulo Simulador", "args", os.Args)

	if err := inicializarModulo(os.Args[1]); err != nil {
		utils.ErrorLog.Error("Error durante la inicialización del Simulador", "error", err.Error())
		os.Exit(1)
	}

	if len(os.Args) > 2 && os.Args[2] == "--iniciar" {
		plan.Iniciar()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go plan.Correr(ctx)

	utils.InfoLog.Info("Simulador listo y esperando conexiones")

	// Esperar señal de terminación
	<-ctx.Done()
	utils.InfoLog.Info("Señal recibida. Finalizando Simulador")

	ctxApagado, cancelApagado := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelApagado()
	if err := modulo.Server.Detener(ctxApagado); err != nil {
		utils.ErrorLog.Error("Error cerrando servidor HTTP", "error", err)
	}
}
