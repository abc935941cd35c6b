package repository

import "github.com/tu-usuario/horeca-stock/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// El agregado completo (tipos de producto + campos por defecto) se lee y
// escribe de una pieza: las mutaciones del esquema operan sobre un draft en
// memoria y se persisten con Update.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	List(onlyActive bool) ([]*entity.Category, error)
	Delete(id string) error
}
