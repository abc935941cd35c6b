package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/horeca-stock/internal/application/dto"
	"github.com/tu-usuario/horeca-stock/internal/application/usecase"
)

// CalendarHandler maneja las peticiones HTTP de la agenda (protegido).
type CalendarHandler struct {
	uc *usecase.CalendarUseCase
}

// NewCalendarHandler construye el handler.
func NewCalendarHandler(uc *usecase.CalendarUseCase) *CalendarHandler {
	return &CalendarHandler{uc: uc}
}

// Create godoc
// @Summary      Agregar evento de agenda
// @Tags         calendar
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEventRequest  true  "Evento"
// @Success      201   {object}  dto.EventResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/calendar/events [post]
func (h *CalendarHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEventRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar evento (incluye marcarlo como hecho)
// @Tags         calendar
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del evento"
// @Param        body  body  dto.UpdateEventRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.EventResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/calendar/events/{id} [put]
func (h *CalendarHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEventRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "evento no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar evento
// @Tags         calendar
// @Security     Bearer
// @Param        id  path  string  true  "ID del evento"
// @Success      204
// @Router       /api/calendar/events/{id} [delete]
func (h *CalendarHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Digest godoc
// @Summary      Resumen de agenda agrupado por día
// @Tags         calendar
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Días hacia adelante"  default(7)
// @Success      200   {object}  dto.DigestResponse
// @Router       /api/calendar/digest [get]
func (h *CalendarHandler) Digest(c *fiber.Ctx) error {
	out, err := h.uc.Digest(time.Now(), c.QueryInt("days", 7))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
