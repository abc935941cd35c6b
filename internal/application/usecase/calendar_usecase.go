package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/horeca-stock/internal/application/dto"
	"github.com/tu-usuario/horeca-stock/internal/domain"
	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
	"github.com/tu-usuario/horeca-stock/internal/domain/repository"
)

// CalendarUseCase agenda del negocio: entregas, cobros y recordatorios, más el
// resumen agrupado por día que consume la UI y el job diario.
type CalendarUseCase struct {
	repo repository.EventRepository
}

// NewCalendarUseCase construye el caso de uso.
func NewCalendarUseCase(repo repository.EventRepository) *CalendarUseCase {
	return &CalendarUseCase{repo: repo}
}

// Create agrega un evento de agenda.
func (uc *CalendarUseCase) Create(in dto.CreateEventRequest) (*dto.EventResponse, error) {
	switch in.Kind {
	case entity.EventDelivery, entity.EventPayment, entity.EventReminder:
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.Title == "" || in.DueAt.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	event := &entity.CalendarEvent{
		ID:        uuid.New().String(),
		Kind:      in.Kind,
		Title:     in.Title,
		Notes:     in.Notes,
		DueAt:     in.DueAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(event); err != nil {
		return nil, err
	}
	return dto.ToEventResponse(event), nil
}

// Update edita un evento (incluye marcarlo como hecho).
func (uc *CalendarUseCase) Update(id string, in dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}
	if in.Title != nil {
		event.Title = *in.Title
	}
	if in.Notes != nil {
		event.Notes = *in.Notes
	}
	if in.DueAt != nil {
		event.DueAt = *in.DueAt
	}
	if in.Done != nil {
		event.Done = *in.Done
	}
	event.UpdatedAt = time.Now()
	if err := uc.repo.Update(event); err != nil {
		return nil, err
	}
	return dto.ToEventResponse(event), nil
}

// Delete elimina un evento.
func (uc *CalendarUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// Digest devuelve los eventos pendientes de [from, from+days) agrupados por
// día, en orden cronológico. Lo consume la vista de agenda y el job diario.
func (uc *CalendarUseCase) Digest(from time.Time, days int) (*dto.DigestResponse, error) {
	if days <= 0 {
		days = 7
	}
	// Inicio del día en la zona horaria de from, no en UTC.
	y, m, d := from.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, from.Location())
	events, err := uc.repo.ListUpcoming(day, day.AddDate(0, 0, days))
	if err != nil {
		return nil, err
	}

	out := &dto.DigestResponse{From: day, Days: days}
	var current *dto.DigestDay
	for _, e := range events {
		date := e.DueAt.Format("2006-01-02")
		if current == nil || current.Date != date {
			out.Groups = append(out.Groups, dto.DigestDay{Date: date})
			current = &out.Groups[len(out.Groups)-1]
		}
		current.Events = append(current.Events, *dto.ToEventResponse(e))
	}
	return out, nil
}
