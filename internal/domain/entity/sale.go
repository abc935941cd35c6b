package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale venta de un producto del inventario. Cada producto es una pieza única
// de segunda mano, así que una venta referencia exactamente un producto.
type Sale struct {
	ID         string
	ProductID  string
	BuyerName  string
	BuyerPhone string
	Price      decimal.Decimal // precio final acordado (puede diferir del SalePrice listado)
	Notes      string
	SoldAt     time.Time
	CreatedAt  time.Time
}
