package memoria

// NivelLog clasifica los eventos del registro
type NivelLog string

const (
	NivelInfo    NivelLog = "info"
	NivelSuccess NivelLog = "success"
	NivelWarning NivelLog = "warning"
	NivelError   NivelLog = "error"
)

// MaxEntradasLog es la cantidad de eventos que conserva el registro
const MaxEntradasLog = 100

// EntradaLog es un evento del registro, con el reloj de la simulación en segundos
type EntradaLog struct {
	Tiempo  int      `json:"tiempo"`
	Mensaje string   `json:"mensaje"`
	Nivel   NivelLog `json:"nivel"`
}

// RegistroEventos guarda los últimos eventos en un buffer circular.
// Al llenarse descarta primero el más antiguo.
type RegistroEventos struct {
	buffer   []EntradaLog
	inicio   int
	cantidad int
}

func NuevoRegistroEventos(capacidad int) *RegistroEventos {
	if capacidad <= 0 {
		capacidad = MaxEntradasLog
	}
	return &RegistroEventos{buffer: make([]EntradaLog, capacidad)}
}

// Agregar registra un evento
func (r *RegistroEventos) Agregar(tiempo int, nivel NivelLog, mensaje string) {
	entrada := EntradaLog{Tiempo: tiempo, Mensaje: mensaje, Nivel: nivel}

	if r.cantidad < len(r.buffer) {
		r.buffer[(r.inicio+r.cantidad)%len(r.buffer)] = entrada
		r.cantidad++
		return
	}

	// Lleno: se pisa el más antiguo
	r.buffer[r.inicio] = entrada
	r.inicio = (r.inicio + 1) % len(r.buffer)
}

func (r *RegistroEventos) Len() int {
	return r.cantidad
}

// Entradas devuelve los eventos en orden cronológico
func (r *RegistroEventos) Entradas() []EntradaLog {
	entradas := make([]EntradaLog, r.cantidad)
	for i := 0; i < r.cantidad; i++ {
		entradas[i] = r.buffer[(r.inicio+i)%len(r.buffer)]
	}
	return entradas
}

// Ultimos devuelve los n eventos más recientes, del más nuevo al más viejo
func (r *RegistroEventos) Ultimos(n int) []EntradaLog {
	if n <= 0 || n > r.cantidad {
		n = r.cantidad
	}
	ultimos := make([]EntradaLog, n)
	for i := 0; i < n; i++ {
		ultimos[i] = r.buffer[(r.inicio+r.cantidad-1-i)%len(r.buffer)]
	}
	return ultimos
}
