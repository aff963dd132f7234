package memoria

import (
	"math"

	"github.com/pkg/errors"
)

const (
	MinMemoriaFisicaMB = 16
	MaxMemoriaFisicaMB = 1024
	MinTamPaginaKB     = 1
	MaxTamPaginaKB     = 64

	// Rango del factor memoria virtual / memoria física
	MinFactorVirtual = 1.5
	MaxFactorVirtual = 4.5
)

// Config representa los parámetros de una simulación de paginación
type Config struct {
	MemoriaFisicaMB int     `json:"TAM_MEMORIA_FISICA_MB"`
	TamPaginaKB     int     `json:"TAM_PAGINA_KB"`
	MinProcesoMB    float64 `json:"TAM_MIN_PROCESO_MB"`
	MaxProcesoMB    float64 `json:"TAM_MAX_PROCESO_MB"`
	FactorVirtual   float64 `json:"FACTOR_VIRTUAL"` // 0 = se sortea en cada inicialización
}

// ConfigPorDefecto devuelve los valores iniciales del simulador
func ConfigPorDefecto() Config {
	return Config{
		MemoriaFisicaMB: 128,
		TamPaginaKB:     4,
		MinProcesoMB:    4,
		MaxProcesoMB:    32,
	}
}

// Validar verifica los rangos aceptados por el simulador
func (c Config) Validar() error {
	if c.MemoriaFisicaMB < MinMemoriaFisicaMB || c.MemoriaFisicaMB > MaxMemoriaFisicaMB {
		return errors.Wrapf(ErrConfigInvalida, "memoria física %d MB fuera de [%d, %d]",
			c.MemoriaFisicaMB, MinMemoriaFisicaMB, MaxMemoriaFisicaMB)
	}
	if c.TamPaginaKB < MinTamPaginaKB || c.TamPaginaKB > MaxTamPaginaKB {
		return errors.Wrapf(ErrConfigInvalida, "tamaño de página %d KB fuera de [%d, %d]",
			c.TamPaginaKB, MinTamPaginaKB, MaxTamPaginaKB)
	}
	if c.MinProcesoMB <= 0 || c.MaxProcesoMB <= 0 {
		return errors.Wrapf(ErrConfigInvalida, "el rango de procesos debe ser positivo (min=%v, max=%v)",
			c.MinProcesoMB, c.MaxProcesoMB)
	}
	if c.MinProcesoMB > c.MaxProcesoMB {
		return errors.Wrapf(ErrConfigInvalida, "tamaño mínimo de proceso %v MB mayor al máximo %v MB",
			c.MinProcesoMB, c.MaxProcesoMB)
	}
	if c.FactorVirtual != 0 && (c.FactorVirtual < MinFactorVirtual || c.FactorVirtual >= MaxFactorVirtual) {
		return errors.Wrapf(ErrConfigInvalida, "factor virtual %v fuera de [%v, %v)",
			c.FactorVirtual, MinFactorVirtual, MaxFactorVirtual)
	}
	return nil
}

// TamPaginaBytes devuelve el tamaño de página en bytes
func (c Config) TamPaginaBytes() int {
	return c.TamPaginaKB * 1024
}

// MarcosRAM calcula la cantidad de marcos de la memoria física
func (c Config) MarcosRAM() int {
	return c.MemoriaFisicaMB * 1024 / c.TamPaginaKB
}

// MemoriaVirtualMB calcula el tamaño de la memoria virtual, truncado a MB enteros
func (c Config) MemoriaVirtualMB(factor float64) int {
	return int(math.Floor(float64(c.MemoriaFisicaMB) * factor))
}

// MarcosSwap calcula los marcos de SWAP: las páginas virtuales que no entran en RAM
func (c Config) MarcosSwap(memoriaVirtualMB int) int {
	marcos := memoriaVirtualMB*1024/c.TamPaginaKB - c.MarcosRAM()
	if marcos < 0 {
		return 0
	}
	return marcos
}
