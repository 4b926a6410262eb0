package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	// ErrExportFailed cubre cualquier fallo de renderizado o emisión del PDF.
	// El registro de historial ya persistido NO se revierte (persistir antes
	// de renderizar es intencional: el historial sobrevive a fallos de render).
	ErrExportFailed = errors.New("exportación del recibo fallida")
)
