package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// ErrSKUConflict: el SKU ya existe en la plataforma. Lo produce tanto el
	// pre-chequeo consultivo como la violación del índice único en el commit
	// (ambos deben verse igual desde el caller: 409, nunca 500).
	ErrSKUConflict = errors.New("SKU already exists")

	// ErrPersistence: fallo de la capa de persistencia durante el commit.
	// El mensaje hacia el caller es genérico para no filtrar internos del storage.
	ErrPersistence = errors.New("Database error occurred")
)

// ValidationError señala un campo de entrada faltante o malformado.
// El mensaje llega textual al caller (detalle a nivel de campo).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewMissingFieldError construye el error estándar de campo requerido.
func NewMissingFieldError(field string) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("%s is required", field)}
}

// NewInvalidFieldError construye un error de campo presente pero malformado.
func NewInvalidFieldError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("%s %s", field, reason)}
}
