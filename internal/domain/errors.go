package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrOrderNotFound     = errors.New("orden no encontrada")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	ErrOverRefund        = errors.New("la cantidad reembolsada excede la cantidad ordenada")
)
