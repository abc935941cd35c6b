package dto

import "github.com/shopspring/decimal"

// PriceResearchRequest consulta de precios de mercado para un equipo.
type PriceResearchRequest struct {
	Query string `query:"q" json:"query"`
}

// PriceSummaryResponse resumen numérico ya calculado por el servicio externo
// de investigación de precios (el scraping y el clustering viven allá).
type PriceSummaryResponse struct {
	Query      string          `json:"query"`
	SampleSize int             `json:"sample_size"`
	Currency   string          `json:"currency"`
	Min        decimal.Decimal `json:"min"`
	Max        decimal.Decimal `json:"max"`
	Average    decimal.Decimal `json:"average"`
	Median     decimal.Decimal `json:"median"`
}
