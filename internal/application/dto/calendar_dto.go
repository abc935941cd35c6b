package dto

import (
	"time"

	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
)

// CreateEventRequest alta de evento de agenda.
type CreateEventRequest struct {
	Kind  string    `json:"kind"` // delivery | payment | reminder
	Title string    `json:"title"`
	Notes string    `json:"notes,omitempty"`
	DueAt time.Time `json:"due_at"`
}

// UpdateEventRequest edición parcial (incluye marcar como hecho).
type UpdateEventRequest struct {
	Title *string    `json:"title,omitempty"`
	Notes *string    `json:"notes,omitempty"`
	DueAt *time.Time `json:"due_at,omitempty"`
	Done  *bool      `json:"done,omitempty"`
}

// EventResponse evento de agenda.
type EventResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Notes     string    `json:"notes,omitempty"`
	DueAt     time.Time `json:"due_at"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DigestDay eventos de un día del resumen.
type DigestDay struct {
	Date   string          `json:"date"` // YYYY-MM-DD
	Events []EventResponse `json:"events"`
}

// DigestResponse resumen de agenda: eventos pendientes agrupados por día.
type DigestResponse struct {
	From   time.Time   `json:"from"`
	Days   int         `json:"days"`
	Groups []DigestDay `json:"groups"`
}

// ToEventResponse convierte la entidad al DTO.
func ToEventResponse(e *entity.CalendarEvent) *EventResponse {
	if e == nil {
		return nil
	}
	return &EventResponse{
		ID:        e.ID,
		Kind:      e.Kind,
		Title:     e.Title,
		Notes:     e.Notes,
		DueAt:     e.DueAt,
		Done:      e.Done,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
