package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
	"github.com/tu-usuario/horeca-stock/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo persistencia de la agenda sobre PostgreSQL.
type EventRepo struct {
	q Querier
}

// NewEventRepository construye el adaptador. Acepta pool o tx (Querier).
func NewEventRepository(q Querier) *EventRepo {
	return &EventRepo{q: q}
}

// Create persiste un evento.
func (r *EventRepo) Create(event *entity.CalendarEvent) error {
	query := `
		INSERT INTO calendar_events (id, kind, title, notes, due_at, done, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.Kind, event.Title, event.Notes,
		event.DueAt, event.Done, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// GetByID obtiene un evento por ID.
func (r *EventRepo) GetByID(id string) (*entity.CalendarEvent, error) {
	query := selectEvent + ` WHERE id = $1`
	event, err := scanEvent(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// Update actualiza un evento.
func (r *EventRepo) Update(event *entity.CalendarEvent) error {
	query := `
		UPDATE calendar_events SET title = $2, notes = $3, due_at = $4, done = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.Title, event.Notes, event.DueAt, event.Done, event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// ListUpcoming lista eventos pendientes con DueAt en [from, to), por fecha.
func (r *EventRepo) ListUpcoming(from, to time.Time) ([]*entity.CalendarEvent, error) {
	query := selectEvent + ` WHERE NOT done AND due_at >= $1 AND due_at < $2 ORDER BY due_at`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	defer rows.Close()

	var out []*entity.CalendarEvent
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, event)
	}
	return out, rows.Err()
}

// Delete elimina un evento.
func (r *EventRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM calendar_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

const selectEvent = `
	SELECT id, kind, title, notes, due_at, done, created_at, updated_at
	FROM calendar_events`

func scanEvent(row pgx.Row) (*entity.CalendarEvent, error) {
	var e entity.CalendarEvent
	if err := row.Scan(&e.ID, &e.Kind, &e.Title, &e.Notes,
		&e.DueAt, &e.Done, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
