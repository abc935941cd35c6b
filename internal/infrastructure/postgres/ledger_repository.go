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

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo persistencia del libro de finanzas sobre PostgreSQL.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Acepta pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Create persiste un movimiento.
func (r *LedgerRepo) Create(entry *entity.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (id, kind, amount, description, sale_id, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.Kind, entry.Amount, entry.Description,
		nullIfEmpty(entry.SaleID), entry.OccurredAt, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *LedgerRepo) GetByID(id string) (*entity.LedgerEntry, error) {
	query := selectLedger + ` WHERE id = $1`
	entry, err := scanLedgerEntry(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}
	return entry, nil
}

// ListByPeriod lista movimientos con OccurredAt en [from, to).
func (r *LedgerRepo) ListByPeriod(from, to time.Time) ([]*entity.LedgerEntry, error) {
	query := selectLedger + ` WHERE occurred_at >= $1 AND occurred_at < $2 ORDER BY occurred_at`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var out []*entity.LedgerEntry
	for rows.Next() {
		entry, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

// MonthlySummary agrega income/expense del mes en SQL.
func (r *LedgerRepo) MonthlySummary(year, month int) (*entity.MonthlySummary, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE kind = 'income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE kind = 'expense'), 0)
		FROM ledger_entries
		WHERE EXTRACT(YEAR FROM occurred_at) = $1 AND EXTRACT(MONTH FROM occurred_at) = $2`
	summary := &entity.MonthlySummary{Year: year, Month: month}
	err := r.q.QueryRow(context.Background(), query, year, month).
		Scan(&summary.Income, &summary.Expense)
	if err != nil {
		return nil, fmt.Errorf("monthly summary: %w", err)
	}
	return summary, nil
}

// Delete elimina un movimiento.
func (r *LedgerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ledger_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ledger entry: %w", err)
	}
	return nil
}

const selectLedger = `
	SELECT id, kind, amount, description, COALESCE(sale_id::text, ''), occurred_at, created_at
	FROM ledger_entries`

func scanLedgerEntry(row pgx.Row) (*entity.LedgerEntry, error) {
	var e entity.LedgerEntry
	if err := row.Scan(&e.ID, &e.Kind, &e.Amount, &e.Description,
		&e.SaleID, &e.OccurredAt, &e.CreatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
