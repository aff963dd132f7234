package utils

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// InfoLog y ErrorLog son los loggers de todo el módulo. Hasta que se llama a
// InicializarLogger escriben con el logger por defecto de slog.
// Los errores se pasan como err.Error().
var (
	InfoLog  = slog.Default()
	ErrorLog = slog.Default()
)

// InicializarLogger configura los loggers globales sobre stdout
func InicializarLogger(logLevel string, moduleName string) {
	InicializarLoggerEn(os.Stdout, logLevel, moduleName)
}

// InicializarLoggerEn configura los loggers globales sobre el writer indicado
func InicializarLoggerEn(w io.Writer, logLevel string, moduleName string) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: NivelLog(logLevel),
	})

	logger := slog.New(handler).With("modulo", moduleName)

	InfoLog = logger
	ErrorLog = logger
}

// NivelLog traduce el nivel de la configuración; ante un valor desconocido usa info
func NivelLog(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
