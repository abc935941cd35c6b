package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/horeca-stock/internal/application/dto"
	"github.com/tu-usuario/horeca-stock/internal/application/usecase"
)

// FinanceHandler maneja las peticiones HTTP del libro de finanzas (protegido).
type FinanceHandler struct {
	uc *usecase.FinanceUseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *usecase.FinanceUseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar movimiento manual
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLedgerEntryRequest  true  "Movimiento"
// @Success      201   {object}  dto.LedgerEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/finance/entries [post]
func (h *FinanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLedgerEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByPeriod godoc
// @Summary      Movimientos de un período
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  true  "Inicio (RFC 3339 o YYYY-MM-DD)"
// @Param        to    query  string  true  "Fin exclusivo (RFC 3339 o YYYY-MM-DD)"
// @Success      200   {object}  dto.LedgerListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/finance/entries [get]
func (h *FinanceHandler) ListByPeriod(c *fiber.Ctx) error {
	from, err := parseDate(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (RFC 3339 o YYYY-MM-DD)"})
	}
	to, err := parseDate(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (RFC 3339 o YYYY-MM-DD)"})
	}
	out, err := h.uc.ListByPeriod(from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MonthlySummary godoc
// @Summary      Totales del mes
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        year   query  int  true  "Año"
// @Param        month  query  int  true  "Mes (1-12)"
// @Success      200    {object}  dto.MonthlySummaryResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/finance/summary [get]
func (h *FinanceHandler) MonthlySummary(c *fiber.Ctx) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	out, err := h.uc.MonthlySummary(year, month)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar movimiento
// @Tags         finance
// @Security     Bearer
// @Param        id  path  string  true  "ID del movimiento"
// @Success      204
// @Router       /api/finance/entries/{id} [delete]
func (h *FinanceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseDate acepta RFC 3339 completo o solo la fecha.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
