package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/horeca-stock/internal/application/dto"
	"github.com/tu-usuario/horeca-stock/internal/application/ports"
	"github.com/tu-usuario/horeca-stock/internal/domain"
)

// MarketUseCase investigación de precios de mercado. El servicio externo hace
// el scraping y el clustering; aquí solo se consume el resumen numérico.
type MarketUseCase struct {
	research ports.MarketResearchService
}

// NewMarketUseCase construye el caso de uso.
func NewMarketUseCase(research ports.MarketResearchService) *MarketUseCase {
	return &MarketUseCase{research: research}
}

// ResearchPrices consulta el resumen de precios para un equipo.
func (uc *MarketUseCase) ResearchPrices(ctx context.Context, in dto.PriceResearchRequest) (*dto.PriceSummaryResponse, error) {
	if uc.research == nil {
		return nil, fmt.Errorf("MARKET_BASE_URL no configurado")
	}
	if in.Query == "" {
		return nil, domain.ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	summary, err := uc.research.ResearchPrices(ctx, in.Query)
	if err != nil {
		return nil, fmt.Errorf("investigación de precios: %w", err)
	}
	return &dto.PriceSummaryResponse{
		Query:      summary.Query,
		SampleSize: summary.SampleSize,
		Currency:   summary.Currency,
		Min:        summary.Min,
		Max:        summary.Max,
		Average:    summary.Average,
		Median:     summary.Median,
	}, nil
}
