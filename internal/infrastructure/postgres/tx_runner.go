package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/horeca-stock/internal/application/usecase"
	"github.com/tu-usuario/horeca-stock/internal/domain/repository"
)

var _ usecase.SaleTxRunner = (*TxRunner)(nil)

// TxRunner abre una transacción sobre el pool y construye los repos
// atados a ella, de modo que todo el callback confirme o se deshaga junto.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run ejecuta fn dentro de una transacción. Commit si fn devuelve nil,
// rollback en caso contrario.
func (t *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	ledgerRepo repository.LedgerRepository,
) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(
		NewProductRepository(tx),
		NewSaleRepository(tx),
		NewLedgerRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
