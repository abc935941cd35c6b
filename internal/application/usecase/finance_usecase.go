package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/horeca-stock/internal/application/dto"
	"github.com/tu-usuario/horeca-stock/internal/domain"
	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
	"github.com/tu-usuario/horeca-stock/internal/domain/repository"
)

// FinanceUseCase libro de finanzas: movimientos manuales y resúmenes. Las
// entradas income de ventas las crea SaleUseCase dentro de su transacción.
type FinanceUseCase struct {
	repo repository.LedgerRepository
}

// NewFinanceUseCase construye el caso de uso.
func NewFinanceUseCase(repo repository.LedgerRepository) *FinanceUseCase {
	return &FinanceUseCase{repo: repo}
}

// Create registra un movimiento manual (compra, flete, reparación...).
func (uc *FinanceUseCase) Create(in dto.CreateLedgerEntryRequest) (*dto.LedgerEntryResponse, error) {
	if in.Kind != entity.LedgerIncome && in.Kind != entity.LedgerExpense {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	occurredAt := time.Now()
	if in.OccurredAt != nil {
		occurredAt = *in.OccurredAt
	}
	entry := &entity.LedgerEntry{
		ID:          uuid.New().String(),
		Kind:        in.Kind,
		Amount:      in.Amount,
		Description: in.Description,
		OccurredAt:  occurredAt,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(entry); err != nil {
		return nil, err
	}
	return dto.ToLedgerEntryResponse(entry), nil
}

// ListByPeriod lista los movimientos de [from, to).
func (uc *FinanceUseCase) ListByPeriod(from, to time.Time) (*dto.LedgerListResponse, error) {
	list, err := uc.repo.ListByPeriod(from, to)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LedgerEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *dto.ToLedgerEntryResponse(e))
	}
	return &dto.LedgerListResponse{Items: items}, nil
}

// MonthlySummary totales de income/expense del mes (agregación en SQL).
func (uc *FinanceUseCase) MonthlySummary(year, month int) (*dto.MonthlySummaryResponse, error) {
	if month < 1 || month > 12 {
		return nil, domain.ErrInvalidInput
	}
	summary, err := uc.repo.MonthlySummary(year, month)
	if err != nil {
		return nil, err
	}
	return &dto.MonthlySummaryResponse{
		Year:    summary.Year,
		Month:   summary.Month,
		Income:  summary.Income,
		Expense: summary.Expense,
		Net:     summary.Net(),
	}, nil
}

// Delete elimina un movimiento manual.
func (uc *FinanceUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
