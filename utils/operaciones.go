package utils

import (
	"strconv"
)

// ExtraerEntero obtiene un campo numérico de los datos del mensaje.
// JSON decodifica los números como float64; también se aceptan strings numéricos.
func ExtraerEntero(msg *Mensaje, clave string) (int, bool) {
	datosMap, ok := msg.Datos.(map[string]interface{})
	if !ok {
		return 0, false
	}

	switch valor := datosMap[clave].(type) {
	case float64:
		return int(valor), true
	case int:
		return valor, true
	case string:
		entero, err := strconv.Atoi(valor)
		if err != nil {
			return 0, false
		}
		return entero, true
	}
	return 0, false
}

// ExtraerEnteroODefecto es ExtraerEntero con valor por defecto
func ExtraerEnteroODefecto(msg *Mensaje, clave string, valorPorDefecto int) int {
	if valor, ok := ExtraerEntero(msg, clave); ok {
		return valor
	}
	return valorPorDefecto
}

// ObtenerTipoOperacion obtiene el tipo de operación del mensaje
func ObtenerTipoOperacion(msg *Mensaje, valorPorDefecto string) string {
	if msg.Operacion != "" {
		return msg.Operacion
	}
	if datosMap, ok := msg.Datos.(map[string]interface{}); ok {
		if tipo, ok := datosMap["tipo"].(string); ok {
			return tipo
		}
	}
	return valorPorDefecto
}

// HandlerGenerico registra la operación recibida y delega en el procesador
func HandlerGenerico(procesador HTTPHandlerFunc) HTTPHandlerFunc {
	return func(msg *Mensaje) (interface{}, error) {
		InfoLog.Info("Operación recibida", "origen", msg.Origen, "tipo", msg.Tipo,
			"operacion", ObtenerTipoOperacion(msg, "default"))
		return procesador(msg)
	}
}
