package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los adaptadores de
// persistencia traducen las violaciones de constraints a estos sentinelas.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrRoleNotFound       = errors.New("rol no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInvalidReference   = errors.New("referencia a un registro inexistente")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrPaymentExceedsDue  = errors.New("el abono supera el saldo pendiente de la venta")
	ErrCodeOutOfRange     = errors.New("código enumerado fuera de rango [0,99]")
)
