package repository

import (
	"time"

	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
)

// EventRepository define el puerto de persistencia para la agenda (DIP).
type EventRepository interface {
	Create(event *entity.CalendarEvent) error
	GetByID(id string) (*entity.CalendarEvent, error)
	Update(event *entity.CalendarEvent) error
	// ListUpcoming devuelve los eventos no completados con DueAt en [from, to), ordenados por DueAt.
	ListUpcoming(from, to time.Time) ([]*entity.CalendarEvent, error)
	Delete(id string) error
}
