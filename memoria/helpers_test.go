package memoria

import (
	"math/rand"
	"testing"
)

func nuevoSistemaPrueba(marcosRAM, marcosSwap, tamPagina int) *Sistema {
	return NuevoSistemaConMarcos(marcosRAM, marcosSwap, tamPagina, rand.New(rand.NewSource(1)))
}

// verificarInvariantes comprueba que cada marco ocupado sea referenciado por
// exactamente una entrada de tabla y que la suma de páginas coincida con los marcos ocupados
func verificarInvariantes(t *testing.T, s *Sistema) {
	t.Helper()

	referencias := map[Ubicacion]map[int]int{UbicacionRAM: {}, UbicacionSWAP: {}}
	totalPaginas := 0

	for _, proceso := range s.Procesos() {
		if len(proceso.TablaPaginas) != proceso.CantidadPaginas {
			t.Fatalf("P%d: tabla con %d entradas y %d páginas", proceso.PID, len(proceso.TablaPaginas), proceso.CantidadPaginas)
		}
		totalPaginas += proceso.CantidadPaginas

		for pagina, entrada := range proceso.TablaPaginas {
			if entrada.Pagina != pagina {
				t.Fatalf("P%d: entrada %d dice página %d", proceso.PID, pagina, entrada.Pagina)
			}

			pool := s.ram
			if entrada.Ubicacion == UbicacionSWAP {
				pool = s.swap
			}
			ocupacion := pool.Ocupacion(entrada.Marco)
			if ocupacion == nil || ocupacion.PID != proceso.PID || ocupacion.Pagina != pagina {
				t.Fatalf("P%d página %d apunta a %s[%d] = %+v", proceso.PID, pagina, entrada.Ubicacion, entrada.Marco, ocupacion)
			}
			referencias[entrada.Ubicacion][entrada.Marco]++
		}
	}

	for ubicacion, marcos := range referencias {
		for marco, cantidad := range marcos {
			if cantidad != 1 {
				t.Fatalf("%s[%d] referenciado %d veces", ubicacion, marco, cantidad)
			}
		}
	}

	if len(referencias[UbicacionRAM]) != s.ram.Ocupados() || len(referencias[UbicacionSWAP]) != s.swap.Ocupados() {
		t.Fatalf("marcos ocupados sin dueño: ram %d/%d swap %d/%d",
			len(referencias[UbicacionRAM]), s.ram.Ocupados(), len(referencias[UbicacionSWAP]), s.swap.Ocupados())
	}
	if totalPaginas != s.ram.Ocupados()+s.swap.Ocupados() {
		t.Fatalf("suma de páginas %d != ocupados %d", totalPaginas, s.ram.Ocupados()+s.swap.Ocupados())
	}
}
