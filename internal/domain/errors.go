package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("producto no encontrado")
	ErrValidation   = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrFetch        = errors.New("fallo al consultar la fuente remota")
)
