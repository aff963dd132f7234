package memoria

import "github.com/pkg/errors"

var (
	// ErrSinMemoria indica que un proceso pide más páginas que los marcos libres de RAM y SWAP juntos.
	// Es terminal: la simulación se detiene.
	ErrSinMemoria = errors.New("memoria insuficiente")
	// ErrSwapAgotado indica que un fallo de página no pudo resolverse por falta de marcos libres en SWAP.
	ErrSwapAgotado = errors.New("swap agotado")

	ErrProcesoInexistente = errors.New("proceso inexistente")
	ErrPaginaInvalida     = errors.New("página fuera de rango")
	ErrConfigInvalida     = errors.New("configuración inválida")
)
