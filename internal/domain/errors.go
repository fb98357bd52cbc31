package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrUpstreamUnavailable = errors.New("servicio externo no disponible")
)
