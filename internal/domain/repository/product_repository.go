package repository

import "github.com/tu-usuario/horeca-stock/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(status string, categoryID string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
