package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// PriceSummary resumen numérico terminado de una investigación de precios de
// mercado. El scraping de anuncios y el clustering de precios corren en un
// servicio externo; aquí solo llega el resultado.
type PriceSummary struct {
	Query      string
	SampleSize int
	Currency   string
	Min        decimal.Decimal
	Max        decimal.Decimal
	Average    decimal.Decimal
	Median     decimal.Decimal
}

// MarketResearchService define el puerto hacia ese servicio externo.
type MarketResearchService interface {
	ResearchPrices(ctx context.Context, query string) (*PriceSummary, error)
}
