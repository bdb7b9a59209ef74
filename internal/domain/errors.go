package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrUnauthorized  = errors.New("sesión inválida o expirada")
	ErrNoSession     = errors.New("no hay sesión activa")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrRequestFailed = errors.New("la petición al backend falló")
)
