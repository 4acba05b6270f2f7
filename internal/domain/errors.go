package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrTransientContention = errors.New("conflicto transitorio de concurrencia, reintente")
)

// InsufficientStockError lleva el saldo actual del pool para diagnóstico del caller.
// errors.Is(err, ErrInsufficientStock) sigue funcionando vía Unwrap.
type InsufficientStockError struct {
	Current int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente (actual: %d)", e.Current)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
