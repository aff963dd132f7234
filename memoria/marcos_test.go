package memoria

import "testing"

func TestPoolMarcos(t *testing.T) {
	pool := NuevoPoolMarcos(UbicacionRAM, 3)

	if marco, ok := pool.BuscarMarcoLibre(); !ok || marco != 0 {
		t.Fatalf("BuscarMarcoLibre = %d, %v; se esperaba 0", marco, ok)
	}
	if _, ok := pool.BuscarMarcoOcupado(); ok {
		t.Fatal("un pool vacío no tiene marcos ocupados")
	}

	pool.Ocupar(0, 1, 0)
	pool.Ocupar(2, 1, 1)

	if marco, _ := pool.BuscarMarcoLibre(); marco != 1 {
		t.Errorf("marco libre = %d, se esperaba 1", marco)
	}
	if pool.Libres() != 1 || pool.Ocupados() != 2 {
		t.Errorf("libres=%d ocupados=%d", pool.Libres(), pool.Ocupados())
	}

	pool.Liberar(0)
	if marco, _ := pool.BuscarMarcoOcupado(); marco != 2 {
		t.Errorf("marco ocupado = %d, se esperaba 2", marco)
	}

	// Liberar dos veces no descuenta de más
	pool.Liberar(0)
	if pool.Ocupados() != 1 {
		t.Errorf("ocupados = %d, se esperaba 1", pool.Ocupados())
	}

	// Pisar un marco ocupado no cuenta doble
	pool.Ocupar(2, 3, 7)
	if pool.Ocupados() != 1 {
		t.Errorf("ocupados = %d, se esperaba 1", pool.Ocupados())
	}

	contenido := pool.Contenido()
	contenido[2].PID = 99
	if pool.Ocupacion(2).PID != 3 {
		t.Error("Contenido debe devolver copias")
	}
}

func TestPoolMarcosPorcentaje(t *testing.T) {
	if NuevoPoolMarcos(UbicacionSWAP, 0).Porcentaje() != 0 {
		t.Error("un pool sin capacidad informa 0%")
	}

	pool := NuevoPoolMarcos(UbicacionSWAP, 4)
	pool.Ocupar(1, 1, 0)
	if pool.Porcentaje() != 25 {
		t.Errorf("porcentaje = %v, se esperaba 25", pool.Porcentaje())
	}
}
