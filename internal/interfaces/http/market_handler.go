package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/horeca-stock/internal/application/dto"
	"github.com/tu-usuario/horeca-stock/internal/application/usecase"
)

// MarketHandler maneja la consulta de precios de mercado (protegido).
type MarketHandler struct {
	uc *usecase.MarketUseCase
}

// NewMarketHandler construye el handler.
func NewMarketHandler(uc *usecase.MarketUseCase) *MarketHandler {
	return &MarketHandler{uc: uc}
}

// ResearchPrices godoc
// @Summary      Resumen de precios de mercado para un equipo
// @Tags         market
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  true  "Equipo a buscar"
// @Success      200  {object}  dto.PriceSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/market/prices [get]
func (h *MarketHandler) ResearchPrices(c *fiber.Ctx) error {
	out, err := h.uc.ResearchPrices(c.UserContext(), dto.PriceResearchRequest{Query: c.Query("q")})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
