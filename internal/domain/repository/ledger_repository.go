package repository

import (
	"time"

	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
)

// LedgerRepository define el puerto de persistencia para el libro de finanzas (DIP).
type LedgerRepository interface {
	Create(entry *entity.LedgerEntry) error
	GetByID(id string) (*entity.LedgerEntry, error)
	ListByPeriod(from, to time.Time) ([]*entity.LedgerEntry, error)
	// MonthlySummary agrega income/expense del mes indicado (la suma se hace en SQL).
	MonthlySummary(year, month int) (*entity.MonthlySummary, error)
	Delete(id string) error
}
