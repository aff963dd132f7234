package main

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/sisoputnfrba/tp-2025-2c-SimuladorPaginacion/memoria"
	"github.com/sisoputnfrba/tp-2025-2c-SimuladorPaginacion/planificador"
	"github.com/sisoputnfrba/tp-2025-2c-SimuladorPaginacion/utils"
)

func configPrueba() planificador.Config {
	return planificador.Config{
		Config: memoria.Config{
			MemoriaFisicaMB: 16,
			TamPaginaKB:     64,
			MinProcesoMB:    1,
			MaxProcesoMB:    1,
			FactorVirtual:   2,
		},
		Semilla: 1,
	}
}

func simuladorPrueba(t *testing.T) (*planificador.Planificador, *utils.HTTPClient, string) {
	t.Helper()

	dumpPath := filepath.Join(t.TempDir(), "dumps")
	p := planificador.NuevoPlanificador(configPrueba())

	m := utils.NuevoModulo("Simulador", "")
	registrarHandlers(m, p, dumpPath)
	servidor := httptest.NewServer(m.CrearServidor("127.0.0.1", 0).Handler())
	t.Cleanup(servidor.Close)

	return p, utils.NewHTTPClientURL(servidor.URL, "test"), dumpPath
}

func TestHandshake(t *testing.T) {
	_, cliente, _ := simuladorPrueba(t)

	var respuesta map[string]interface{}
	if err := cliente.EnviarHTTPMensaje(utils.MensajeHandshake, "handshake", nil, &respuesta); err != nil {
		t.Fatal(err)
	}
	if respuesta["tam_pagina"] != float64(64*1024) || respuesta["marcos_ram"] != float64(256) || respuesta["marcos_swap"] != float64(256) {
		t.Errorf("handshake = %v", respuesta)
	}
}

func TestControlDeLaSimulacion(t *testing.T) {
	p, cliente, _ := simuladorPrueba(t)

	if err := cliente.EnviarHTTPMensaje(utils.MensajeIniciar, "", nil, nil); err != nil {
		t.Fatal(err)
	}
	p.Tick()
	p.Tick()

	var pausa map[string]interface{}
	if err := cliente.EnviarHTTPMensaje(utils.MensajePausar, "", nil, &pausa); err != nil {
		t.Fatal(err)
	}
	if pausa["pausado"] != true {
		t.Errorf("pausa = %v", pausa)
	}

	var estado planificador.Estado
	if err := cliente.EnviarHTTPMensaje(utils.MensajeEstado, "", map[string]interface{}{"ultimos": 1}, &estado); err != nil {
		t.Fatal(err)
	}
	if !estado.Ejecutando || !estado.Pausado || estado.Reloj != 2 || len(estado.Procesos) != 1 || len(estado.Log) != 1 {
		t.Errorf("estado = reloj %d, ejecutando %v, pausado %v, procesos %d, log %d",
			estado.Reloj, estado.Ejecutando, estado.Pausado, len(estado.Procesos), len(estado.Log))
	}

	if err := cliente.EnviarHTTPMensaje(utils.MensajeReiniciar, "", nil, nil); err != nil {
		t.Fatal(err)
	}
	if actual := p.Estado(0); actual.Reloj != 0 || actual.Ejecutando || len(actual.Procesos) != 0 {
		t.Errorf("después de reiniciar: reloj %d, ejecutando %v", actual.Reloj, actual.Ejecutando)
	}
}

func TestOperacionesSobreProcesos(t *testing.T) {
	p, cliente, _ := simuladorPrueba(t)

	var creado struct {
		Status  string          `json:"status"`
		Proceso memoria.Proceso `json:"proceso"`
	}
	if err := cliente.EnviarHTTPMensaje(utils.MensajeInicializarProceso, "", map[string]interface{}{"tamanio": 300 * 64 * 1024}, &creado); err != nil {
		t.Fatal(err)
	}
	if creado.Status != "OK" || creado.Proceso.PID != 1 || creado.Proceso.CantidadPaginas != 300 {
		t.Fatalf("creado = %+v", creado)
	}

	// La página 299 quedó en SWAP: el acceso produce un fallo
	var acceso struct {
		Status string                  `json:"status"`
		Acceso memoria.ResultadoAcceso `json:"acceso"`
	}
	if err := cliente.EnviarHTTPMensaje(utils.MensajeAcceder, "", map[string]interface{}{"pid": 1, "pagina": 299}, &acceso); err != nil {
		t.Fatal(err)
	}
	if !acceso.Acceso.Fallo || acceso.Acceso.Marco != 0 {
		t.Errorf("acceso = %+v", acceso)
	}

	var invalido map[string]interface{}
	if err := cliente.EnviarHTTPMensaje(utils.MensajeAcceder, "", map[string]interface{}{"pid": 1, "pagina": 300}, &invalido); err != nil {
		t.Fatal(err)
	}
	if invalido["codigo"] != "PAGINA_INVALIDA" {
		t.Errorf("respuesta = %v", invalido)
	}

	var sinMemoria map[string]interface{}
	if err := cliente.EnviarHTTPMensaje(utils.MensajeInicializarProceso, "", map[string]interface{}{"tamanio": 300 * 64 * 1024}, &sinMemoria); err != nil {
		t.Fatal(err)
	}
	if sinMemoria["codigo"] != "SIN_MEMORIA" {
		t.Errorf("respuesta = %v", sinMemoria)
	}

	var finalizado map[string]interface{}
	if err := cliente.EnviarHTTPMensaje(utils.MensajeFinalizarProceso, "", map[string]interface{}{"pid": 1}, &finalizado); err != nil {
		t.Fatal(err)
	}
	if finalizado["pid"] != float64(1) || p.Estado(0).OcupadosRAM != 0 {
		t.Errorf("finalizado = %v", finalizado)
	}

	var inexistente map[string]interface{}
	if err := cliente.EnviarHTTPMensaje(utils.MensajeFinalizarProceso, "", map[string]interface{}{"pid": 1}, &inexistente); err != nil {
		t.Fatal(err)
	}
	if inexistente["codigo"] != "PROCESO_INEXISTENTE" {
		t.Errorf("respuesta = %v", inexistente)
	}

	var aleatorio map[string]interface{}
	if err := cliente.EnviarHTTPMensaje(utils.MensajeFinalizarProceso, "", nil, &aleatorio); err != nil {
		t.Fatal(err)
	}
	if aleatorio["mensaje"] != "no hay procesos activos" {
		t.Errorf("respuesta = %v", aleatorio)
	}
}

func TestMemoryDump(t *testing.T) {
	p, cliente, dumpPath := simuladorPrueba(t)
	p.CrearProceso(64 * 1024)

	var respuesta map[string]interface{}
	if err := cliente.EnviarHTTPMensaje(utils.MensajeMemoryDump, "", nil, &respuesta); err != nil {
		t.Fatal(err)
	}

	ruta, _ := respuesta["archivo"].(string)
	if filepath.Dir(ruta) != dumpPath {
		t.Fatalf("dump en %q", ruta)
	}

	contenido, err := os.ReadFile(ruta)
	if err != nil {
		t.Fatal(err)
	}
	var estado planificador.Estado
	if err := json.Unmarshal(contenido, &estado); err != nil {
		t.Fatal(err)
	}
	if len(estado.Procesos) != 1 || len(estado.RAM) != 256 {
		t.Errorf("dump con %d procesos y %d marcos de RAM", len(estado.Procesos), len(estado.RAM))
	}
}

func TestRespuestaError(t *testing.T) {
	casos := map[string]error{
		"SIN_MEMORIA":         errors.Wrap(memoria.ErrSinMemoria, "P1"),
		"SWAP_AGOTADO":        errors.Wrap(memoria.ErrSwapAgotado, "P1"),
		"PROCESO_INEXISTENTE": memoria.ErrProcesoInexistente,
		"PAGINA_INVALIDA":     memoria.ErrPaginaInvalida,
		"ERROR":               errors.New("otro"),
	}
	for codigo, err := range casos {
		if respuesta := respuestaError(err); respuesta["codigo"] != codigo {
			t.Errorf("respuestaError(%v) = %v", err, respuesta["codigo"])
		}
	}
}

func escribirConfig(t *testing.T, contenido string) string {
	t.Helper()
	ruta := filepath.Join(t.TempDir(), "simulador.json")
	if err := os.WriteFile(ruta, []byte(contenido), 0644); err != nil {
		t.Fatal(err)
	}
	return ruta
}

func TestCargarConfiguracionCompletaValoresPorDefecto(t *testing.T) {
	cfg, err := cargarConfiguracion(escribirConfig(t, `{"TAM_PAGINA_KB": 8, "SEMILLA": 42}`))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.IPSimulador != "127.0.0.1" || cfg.PuertoSimulador != 8010 || cfg.LogLevel != "info" || cfg.DumpPath != "./dumps" {
		t.Errorf("config = %+v", cfg)
	}
	if cfg.MemoriaFisicaMB != 128 || cfg.TamPaginaKB != 8 || cfg.MinProcesoMB != 4 || cfg.MaxProcesoMB != 32 {
		t.Errorf("memoria = %+v", cfg.Config.Config)
	}
	if cfg.Semilla != 42 {
		t.Errorf("semilla = %d", cfg.Semilla)
	}
}

func TestCargarConfiguracionInvalida(t *testing.T) {
	_, err := cargarConfiguracion(escribirConfig(t, `{"TAM_MEMORIA_FISICA_MB": 4}`))
	if !errors.Is(err, memoria.ErrConfigInvalida) {
		t.Errorf("se esperaba ErrConfigInvalida, se obtuvo %v", err)
	}
}
