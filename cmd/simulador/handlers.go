package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/sisoputnfrba/tp-2025-2c-SimuladorPaginacion/memoria"
	"github.com/sisoputnfrba/tp-2025-2c-SimuladorPaginacion/planificador"
	"github.com/sisoputnfrba/tp-2025-2c-SimuladorPaginacion/utils"
)

// Cantidad de eventos del log que se devuelven por defecto en el estado
const eventosPorDefecto = 20

func registrarHandlers(m *utils.Modulo, p *planificador.Planificador, dumpPath string) {
	m.RegistrarHandler(strconv.Itoa(utils.MensajeHandshake), "handshake", handlerHandshake(p))
	m.RegistrarHandler(strconv.Itoa(utils.MensajeIniciar), "default", utils.HandlerGenerico(handlerIniciar(p)))
	m.RegistrarHandler(strconv.Itoa(utils.MensajePausar), "default", utils.HandlerGenerico(handlerPausar(p)))
	m.RegistrarHandler(strconv.Itoa(utils.MensajeReiniciar), "default", utils.HandlerGenerico(handlerReiniciar(p)))
	m.RegistrarHandler(strconv.Itoa(utils.MensajeEstado), "default", handlerEstado(p))
	m.RegistrarHandler(strconv.Itoa(utils.MensajeInicializarProceso), "default", utils.HandlerGenerico(handlerInicializarProceso(p)))
	m.RegistrarHandler(strconv.Itoa(utils.MensajeFinalizarProceso), "default", utils.HandlerGenerico(handlerFinalizarProceso(p)))
	m.RegistrarHandler(strconv.Itoa(utils.MensajeAcceder), "default", utils.HandlerGenerico(handlerAcceder(p)))
	m.RegistrarHandler(strconv.Itoa(utils.MensajeMemoryDump), "default", utils.HandlerGenerico(handlerMemoryDump(p, dumpPath)))

	utils.InfoLog.Info("Handlers registrados correctamente")
}

// Handler para handshake
func handlerHandshake(p *planificador.Planificador) utils.HTTPHandlerFunc {
	return func(msg *utils.Mensaje) (interface{}, error) {
		utils.InfoLog.Info("Handshake recibido", "origen", msg.Origen)

		marcosRAM, marcosSwap, tamPagina := p.Capacidades()
		return map[string]interface{}{
			"status":      "OK",
			"tam_pagina":  tamPagina,
			"marcos_ram":  marcosRAM,
			"marcos_swap": marcosSwap,
		}, nil
	}
}

func handlerIniciar(p *planificador.Planificador) utils.HTTPHandlerFunc {
	return func(msg *utils.Mensaje) (interface{}, error) {
		p.Iniciar()
		return map[string]interface{}{"status": "OK"}, nil
	}
}

func handlerPausar(p *planificador.Planificador) utils.HTTPHandlerFunc {
	return func(msg *utils.Mensaje) (interface{}, error) {
		pausado := p.AlternarPausa()
		return map[string]interface{}{"status": "OK", "pausado": pausado}, nil
	}
}

func handlerReiniciar(p *planificador.Planificador) utils.HTTPHandlerFunc {
	return func(msg *utils.Mensaje) (interface{}, error) {
		p.Reiniciar()
		return map[string]interface{}{"status": "OK"}, nil
	}
}

func handlerEstado(p *planificador.Planificador) utils.HTTPHandlerFunc {
	return func(msg *utils.Mensaje) (interface{}, error) {
		ultimos := utils.ExtraerEnteroODefecto(msg, "ultimos", eventosPorDefecto)
		return p.Estado(ultimos), nil
	}
}

func handlerInicializarProceso(p *planificador.Planificador) utils.HTTPHandlerFunc {
	return func(msg *utils.Mensaje) (interface{}, error) {
		tamanio := utils.ExtraerEnteroODefecto(msg, "tamanio", 0)

		proceso, err := p.CrearProceso(tamanio)
		if err != nil {
			utils.ErrorLog.Error("Error creando proceso", "tamanio", tamanio, "error", err.Error())
			return respuestaError(err), nil
		}

		return map[string]interface{}{
			"status":  "OK",
			"proceso": proceso,
		}, nil
	}
}

func handlerFinalizarProceso(p *planificador.Planificador) utils.HTTPHandlerFunc {
	return func(msg *utils.Mensaje) (interface{}, error) {
		pid, ok := utils.ExtraerEntero(msg, "pid")
		if !ok {
			pidFinalizado, hubo := p.FinalizarProcesoAleatorio()
			if !hubo {
				return map[string]interface{}{"status": "OK", "mensaje": "no hay procesos activos"}, nil
			}
			return map[string]interface{}{"status": "OK", "pid": pidFinalizado}, nil
		}

		if err := p.FinalizarProceso(pid); err != nil {
			utils.ErrorLog.Error("Error finalizando proceso", "pid", pid, "error", err.Error())
			return respuestaError(err), nil
		}
		return map[string]interface{}{"status": "OK", "pid": pid}, nil
	}
}

func handlerAcceder(p *planificador.Planificador) utils.HTTPHandlerFunc {
	return func(msg *utils.Mensaje) (interface{}, error) {
		var resultado *memoria.ResultadoAcceso
		var err error

		pid, ok := utils.ExtraerEntero(msg, "pid")
		if ok {
			pagina := utils.ExtraerEnteroODefecto(msg, "pagina", 0)
			resultado, err = p.Acceder(pid, pagina)
		} else {
			resultado, err = p.AccederAleatorio()
		}

		respuesta := map[string]interface{}{"status": "OK", "acceso": resultado}
		if err != nil {
			respuesta = respuestaError(err)
			// Con SWAP agotado el acceso existió: se informa igual
			if errors.Is(err, memoria.ErrSwapAgotado) {
				respuesta["acceso"] = resultado
			}
		}
		return respuesta, nil
	}
}

// respuestaError arma la respuesta de error con un código estable para el cliente
func respuestaError(err error) map[string]interface{} {
	codigo := "ERROR"
	switch {
	case errors.Is(err, memoria.ErrSinMemoria):
		codigo = "SIN_MEMORIA"
	case errors.Is(err, memoria.ErrSwapAgotado):
		codigo = "SWAP_AGOTADO"
	case errors.Is(err, memoria.ErrProcesoInexistente):
		codigo = "PROCESO_INEXISTENTE"
	case errors.Is(err, memoria.ErrPaginaInvalida):
		codigo = "PAGINA_INVALIDA"
	}

	return map[string]interface{}{
		"codigo": codigo,
		"error":  fmt.Sprintf("%v", err),
	}
}
