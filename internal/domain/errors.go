package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Todos los flujos esperados se expresan como valores: ninguna operación del
// núcleo usa panics ni excepciones para control de flujo.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// ErrDuplicateIdentifier: el identificador normalizado de una etiqueta ya
	// existe en la lista destino (tipo de producto o campo técnico). Se rechaza
	// en la frontera de mutación y se muestra como mensaje inline al usuario.
	ErrDuplicateIdentifier = errors.New("identificador duplicado")

	// ErrEmptyIdentifier: la etiqueta no contiene contenido alfanumérico y su
	// identificador normalizado queda vacío.
	ErrEmptyIdentifier = errors.New("identificador vacío")

	// ErrUnknownProductType: el tipo indicado no existe en la categoría.
	ErrUnknownProductType = errors.New("tipo de producto desconocido")

	// ErrUnknownField: el campo indicado no existe en la lista destino.
	ErrUnknownField = errors.New("campo técnico desconocido")

	// ErrProductSold: el producto ya fue vendido y no admite otra venta.
	ErrProductSold = errors.New("el producto ya está vendido")
)
