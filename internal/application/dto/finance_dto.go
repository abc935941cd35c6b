package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
)

// CreateLedgerEntryRequest alta manual de un movimiento del libro.
type CreateLedgerEntryRequest struct {
	Kind        string          `json:"kind"` // income | expense
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	OccurredAt  *time.Time      `json:"occurred_at,omitempty"` // nil = ahora
}

// LedgerEntryResponse movimiento del libro.
type LedgerEntryResponse struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	SaleID      string          `json:"sale_id,omitempty"`
	OccurredAt  time.Time       `json:"occurred_at"`
	CreatedAt   time.Time       `json:"created_at"`
}

// LedgerListResponse movimientos de un período.
type LedgerListResponse struct {
	Items []LedgerEntryResponse `json:"items"`
}

// MonthlySummaryResponse totales del mes.
type MonthlySummaryResponse struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// ToLedgerEntryResponse convierte la entidad al DTO.
func ToLedgerEntryResponse(e *entity.LedgerEntry) *LedgerEntryResponse {
	if e == nil {
		return nil
	}
	return &LedgerEntryResponse{
		ID:          e.ID,
		Kind:        e.Kind,
		Amount:      e.Amount,
		Description: e.Description,
		SaleID:      e.SaleID,
		OccurredAt:  e.OccurredAt,
		CreatedAt:   e.CreatedAt,
	}
}
