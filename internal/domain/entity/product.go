package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del producto en el flujo de venta.
const (
	ProductAvailable = "available"
	ProductReserved  = "reserved"
	ProductSold      = "sold"
)

// Tipos de margen de negociación sobre el precio de venta.
const (
	NegotiationFixed   = "fixed"   // monto fijo
	NegotiationPercent = "percent" // porcentaje del precio
)

// Product ítem del inventario (equipo de cocina industrial de segunda mano).
//
// ProductType referencia el Value de un ProductType dentro de su categoría.
// ExtraSpecs es la bolsa de valores técnicos sin esquema fijo, indexada por
// SpecField.Name y escrita/leída exclusivamente a través del codec de
// internal/domain/schema. El producto guarda un snapshot resuelto: no mantiene
// referencia viva al esquema, así que un valor puede quedar "huérfano" si el
// esquema cambia; se conserva intacto y simplemente no se muestra hasta que el
// esquema vuelva a definir ese campo.
type Product struct {
	ID                string
	CategoryID        string // vacío = sin categoría asignada
	ProductType       string // vacío = sin tipo; puede ser un token libre aún sin resolver
	Name              string
	Material          string
	Notes             string
	PurchasePrice     decimal.Decimal
	SalePrice         decimal.Decimal
	NegotiationMargin decimal.Decimal
	NegotiationType   string // fixed | percent
	Status            string // available | reserved | sold
	ExtraSpecs        map[string]any // nil = sin especificaciones
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
