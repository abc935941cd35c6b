package repository

import (
	"time"

	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale (DIP).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	ListByPeriod(from, to time.Time) ([]*entity.Sale, error)
	List(limit, offset int) ([]*entity.Sale, error)
}
