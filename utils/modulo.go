package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

// Modulo representa un módulo genérico del sistema
type Modulo struct {
	Nombre      string
	Server      *HTTPServer
	ConfigPath  string
	HandlerFunc map[string]map[string]HTTPHandlerFunc
}

// NuevoModulo crea una nueva instancia de un módulo
func NuevoModulo(nombre string, configPath string) *Modulo {
	return &Modulo{
		Nombre:      nombre,
		ConfigPath:  configPath,
		HandlerFunc: make(map[string]map[string]HTTPHandlerFunc),
	}
}

// RegistrarHandler registra un handler para un tipo de mensaje y operación específicos
func (m *Modulo) RegistrarHandler(tipo string, operacion string, handler HTTPHandlerFunc) {
	if _, existe := m.HandlerFunc[tipo]; !existe {
		m.HandlerFunc[tipo] = make(map[string]HTTPHandlerFunc)
	}
	m.HandlerFunc[tipo][operacion] = handler
}

// CrearServidor arma el servidor HTTP del módulo con los handlers registrados
func (m *Modulo) CrearServidor(ip string, puerto int) *HTTPServer {
	m.Server = NewHTTPServer(ip, puerto, m.Nombre)

	for tipoStr, handlersPorOperacion := range m.HandlerFunc {
		tipo, err := strconv.Atoi(tipoStr)
		if err != nil {
			ErrorLog.Error("Error al convertir tipo de mensaje a entero", "tipo", tipoStr, "error", err)
			continue
		}

		m.Server.RegisterHTTPHandler(tipo, despacharPorOperacion(tipo, handlersPorOperacion))
	}

	return m.Server
}

// IniciarServidor crea el servidor y lo pone a escuchar en segundo plano
func (m *Modulo) IniciarServidor(ip string, puerto int) {
	server := m.CrearServidor(ip, puerto)

	go func() {
		if err := server.Start(); err != nil {
			ErrorLog.Error("Error al iniciar servidor HTTP", "error", err.Error())
			os.Exit(1)
		}
	}()

	InfoLog.Info("Servidor HTTP iniciado", "módulo", m.Nombre, "ip", ip, "puerto", puerto)
}

func despacharPorOperacion(tipo int, handlersPorOperacion map[string]HTTPHandlerFunc) HTTPHandlerFunc {
	return func(msg *Mensaje) (interface{}, error) {
		operacion := msg.Operacion
		if operacion == "" {
			operacion = "default"
		}

		handler, existe := handlersPorOperacion[operacion]
		if !existe {
			handler, existe = handlersPorOperacion["default"]
			if !existe {
				ErrorLog.Error("No hay handler para operación", "tipo", tipo, "operacion", operacion)
				return nil, errors.Errorf("no hay handler para operación %s", operacion)
			}
		}

		return handler(msg)
	}
}

// CargarConfiguracion decodifica un archivo JSON en el tipo de configuración pedido
func CargarConfiguracion[T any](ruta string) (*T, error) {
	InfoLog.Info("Cargando configuración", "ruta", ruta)

	absPath, err := filepath.Abs(ruta)
	if err != nil {
		return nil, errors.Wrapf(err, "error obteniendo ruta absoluta de %s", ruta)
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, errors.Wrapf(err, "error abriendo archivo de configuración %s", absPath)
	}
	defer file.Close()

	// Decodificar JSON directamente al tipo genérico
	var config T
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return nil, errors.Wrapf(err, "error decodificando configuración %s", absPath)
	}

	InfoLog.Info("Configuración cargada correctamente", "archivo", absPath)
	return &config, nil
}

// ============================================================================
// Constantes para tipos de mensajes
// ============================================================================
const (
	// === COMUNICACIÓN BÁSICA (1-9) ===
	MensajeHandshake = 1 // Conexión inicial

	// === MEMORIA (10-19) ===
	MensajeMemoryDump = 15 // Volcado del estado a archivo

	// === GESTIÓN DE PROCESOS (20-29) ===
	MensajeInicializarProceso = 20 // Crear proceso
	MensajeFinalizarProceso   = 21 // Terminar proceso

	// === CONTROL DE LA SIMULACIÓN (40-49) ===
	MensajeIniciar   = 40 // Iniciar (inicializa si no está corriendo)
	MensajePausar    = 41 // Pausar / reanudar
	MensajeReiniciar = 42 // Detener y reinicializar
	MensajeEstado    = 43 // Instantánea del estado
	MensajeAcceder   = 44 // Acceso a memoria virtual
)
