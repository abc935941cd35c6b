package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/horeca-stock/internal/application/usecase"
	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
)

// fakeEventRepo registra la ventana consultada y devuelve eventos fijos.
type fakeEventRepo struct {
	events   []*entity.CalendarEvent
	from, to time.Time
}

func (r *fakeEventRepo) Create(e *entity.CalendarEvent) error          { return nil }
func (r *fakeEventRepo) GetByID(string) (*entity.CalendarEvent, error) { return nil, nil }
func (r *fakeEventRepo) Update(e *entity.CalendarEvent) error          { return nil }
func (r *fakeEventRepo) Delete(string) error                           { return nil }

func (r *fakeEventRepo) ListUpcoming(from, to time.Time) ([]*entity.CalendarEvent, error) {
	r.from, r.to = from, to
	return r.events, nil
}

func TestDigest_VentanaEnLaZonaHorariaLocal(t *testing.T) {
	// Estambul, 01:30 de la madrugada: el día ya empezó localmente pero en
	// UTC todavía es el día anterior.
	loc := time.FixedZone("TRT", 3*60*60)
	from := time.Date(2026, time.March, 10, 1, 30, 0, 0, loc)

	repo := &fakeEventRepo{}
	uc := usecase.NewCalendarUseCase(repo)

	out, err := uc.Digest(from, 7)
	require.NoError(t, err)

	wantStart := time.Date(2026, time.March, 10, 0, 0, 0, 0, loc)
	assert.True(t, repo.from.Equal(wantStart), "la ventana arranca a medianoche local, no en el corte UTC")
	assert.True(t, repo.to.Equal(wantStart.AddDate(0, 0, 7)))
	assert.Equal(t, 7, out.Days)
}

func TestDigest_AgrupaPorDiaEnOrden(t *testing.T) {
	day1 := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, time.March, 11, 14, 0, 0, 0, time.UTC)
	repo := &fakeEventRepo{events: []*entity.CalendarEvent{
		{ID: "e1", Kind: entity.EventDelivery, Title: "Entrega fritöz", DueAt: day1},
		{ID: "e2", Kind: entity.EventPayment, Title: "Cobro saldo", DueAt: day1.Add(2 * time.Hour)},
		{ID: "e3", Kind: entity.EventReminder, Title: "Llamar proveedor", DueAt: day2},
	}}
	uc := usecase.NewCalendarUseCase(repo)

	out, err := uc.Digest(day1, 7)
	require.NoError(t, err)
	require.Len(t, out.Groups, 2)
	assert.Equal(t, "2026-03-10", out.Groups[0].Date)
	assert.Len(t, out.Groups[0].Events, 2)
	assert.Equal(t, "2026-03-11", out.Groups[1].Date)
	assert.Equal(t, "Llamar proveedor", out.Groups[1].Events[0].Title)
}

func TestDigest_DiasNoPositivosUsaSemana(t *testing.T) {
	repo := &fakeEventRepo{}
	uc := usecase.NewCalendarUseCase(repo)

	out, err := uc.Digest(time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC), 0)
	require.NoError(t, err)
	assert.Equal(t, 7, out.Days)
	assert.Equal(t, 7*24*time.Hour, repo.to.Sub(repo.from))
}
