package entity

import "time"

// Clases de evento de agenda.
const (
	EventDelivery = "delivery" // entrega de equipo a cliente
	EventPayment  = "payment"  // cobro o pago pendiente
	EventReminder = "reminder" // recordatorio libre
)

// CalendarEvent evento de la agenda del negocio, mostrado en el resumen diario.
type CalendarEvent struct {
	ID        string
	Kind      string // delivery | payment | reminder
	Title     string
	Notes     string
	DueAt     time.Time
	Done      bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
