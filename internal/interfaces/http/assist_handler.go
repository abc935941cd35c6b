package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/horeca-stock/internal/application/dto"
	"github.com/tu-usuario/horeca-stock/internal/application/usecase"
)

// AssistHandler maneja la entrada de datos asistida por IA (protegido).
type AssistHandler struct {
	uc *usecase.AssistUseCase
}

// NewAssistHandler construye el handler.
func NewAssistHandler(uc *usecase.AssistUseCase) *AssistHandler {
	return &AssistHandler{uc: uc}
}

// Extract godoc
// @Summary      Extraer borrador de producto desde texto y/o foto
// @Description  Corre la extracción IA y reconcilia el resultado contra el esquema vigente. Siempre devuelve un borrador usable más advertencias.
// @Tags         assist
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExtractRequest  true  "Texto libre y/o imagen base64"
// @Success      200   {object}  dto.AssistDraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/assist/extract [post]
func (h *AssistHandler) Extract(c *fiber.Ctx) error {
	var in dto.ExtractRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ExtractDraft(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Transcribe godoc
// @Summary      Transcribir audio y anexarlo a las notas
// @Tags         assist
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TranscribeRequest  true  "Audio base64 y notas actuales"
// @Success      200   {object}  dto.TranscribeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/assist/transcribe [post]
func (h *AssistHandler) Transcribe(c *fiber.Ctx) error {
	var in dto.TranscribeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Transcribe(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
