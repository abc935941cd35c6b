package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direcciones de un movimiento del libro de finanzas.
const (
	LedgerIncome  = "income"
	LedgerExpense = "expense"
)

// LedgerEntry movimiento del libro de finanzas del negocio.
// Las ventas generan entradas income automáticamente; compras, fletes y
// reparaciones se registran a mano como expense.
type LedgerEntry struct {
	ID          string
	Kind        string // income | expense
	Amount      decimal.Decimal
	Description string
	SaleID      string // vacío si el movimiento no proviene de una venta
	OccurredAt  time.Time
	CreatedAt   time.Time
}

// MonthlySummary totales agregados de un mes del libro.
type MonthlySummary struct {
	Year     int
	Month    int
	Income   decimal.Decimal
	Expense  decimal.Decimal
}

// Net devuelve income - expense.
func (s MonthlySummary) Net() decimal.Decimal {
	return s.Income.Sub(s.Expense)
}
