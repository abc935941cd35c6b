package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/horeca-stock/internal/application/dto"
	"github.com/tu-usuario/horeca-stock/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP de categorías y del editor de
// esquema (tipos de producto y campos técnicos).
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        active  query  bool  false  "Solo activas"
// @Success      200     {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.QueryBool("active", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener categoría con su esquema
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "categoría no encontrada")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar atributos planos de la categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "categoría no encontrada")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría
// @Tags         categories
// @Security     Bearer
// @Param        id  path  string  true  "ID de la categoría"
// @Success      204
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Editor de esquema ─────────────────────────────────────────────────────────

// AddProductType godoc
// @Summary      Agregar tipo de producto a la categoría
// @Tags         schema
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.AddProductTypeRequest  true  "Etiqueta del tipo"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/types [post]
func (h *CategoryHandler) AddProductType(c *fiber.Ctx) error {
	var in dto.AddProductTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddProductType(c.Params("id"), in)
	return h.respondMutation(c, out, err)
}

// RemoveProductType godoc
// @Summary      Eliminar tipo de producto
// @Tags         schema
// @Security     Bearer
// @Produce      json
// @Param        id     path  string  true  "ID de la categoría"
// @Param        value  path  string  true  "Identificador del tipo"
// @Success      200    {object}  dto.CategoryResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/types/{value} [delete]
func (h *CategoryHandler) RemoveProductType(c *fiber.Ctx) error {
	out, err := h.uc.RemoveProductType(c.Params("id"), c.Params("value"))
	return h.respondMutation(c, out, err)
}

// AddTypeField godoc
// @Summary      Agregar campo técnico al tipo
// @Tags         schema
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id     path  string  true  "ID de la categoría"
// @Param        value  path  string  true  "Identificador del tipo"
// @Param        body   body  dto.AddSpecFieldRequest  true  "Definición del campo"
// @Success      200    {object}  dto.CategoryResponse
// @Failure      409    {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/types/{value}/fields [post]
func (h *CategoryHandler) AddTypeField(c *fiber.Ctx) error {
	var in dto.AddSpecFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddTypeField(c.Params("id"), c.Params("value"), in)
	return h.respondMutation(c, out, err)
}

// RemoveTypeField godoc
// @Summary      Eliminar campo técnico del tipo
// @Tags         schema
// @Security     Bearer
// @Produce      json
// @Param        id     path  string  true  "ID de la categoría"
// @Param        value  path  string  true  "Identificador del tipo"
// @Param        name   path  string  true  "Identificador del campo"
// @Success      200    {object}  dto.CategoryResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/types/{value}/fields/{name} [delete]
func (h *CategoryHandler) RemoveTypeField(c *fiber.Ctx) error {
	out, err := h.uc.RemoveTypeField(c.Params("id"), c.Params("value"), c.Params("name"))
	return h.respondMutation(c, out, err)
}

// AddDefaultField godoc
// @Summary      Agregar campo a los defaults de la categoría
// @Tags         schema
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.AddSpecFieldRequest  true  "Definición del campo"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/fields [post]
func (h *CategoryHandler) AddDefaultField(c *fiber.Ctx) error {
	var in dto.AddSpecFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddDefaultField(c.Params("id"), in)
	return h.respondMutation(c, out, err)
}

// RemoveDefaultField godoc
// @Summary      Eliminar campo de los defaults
// @Tags         schema
// @Security     Bearer
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        name  path  string  true  "Identificador del campo"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/fields/{name} [delete]
func (h *CategoryHandler) RemoveDefaultField(c *fiber.Ctx) error {
	out, err := h.uc.RemoveDefaultField(c.Params("id"), c.Params("name"))
	return h.respondMutation(c, out, err)
}

// EffectiveFields godoc
// @Summary      Campos vigentes para el formulario de producto
// @Tags         schema
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID de la categoría"
// @Param        type  query  string  false  "Identificador del tipo"
// @Success      200   {object}  dto.EffectiveFieldsResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{id}/effective-fields [get]
func (h *CategoryHandler) EffectiveFields(c *fiber.Ctx) error {
	out, err := h.uc.EffectiveFields(c.Params("id"), c.Query("type"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "categoría no encontrada")
	}
	return c.JSON(out)
}

// respondMutation respuesta común de las mutaciones de esquema: 200 con la
// categoría actualizada, 404 si no existe, o el error de dominio traducido.
func (h *CategoryHandler) respondMutation(c *fiber.Ctx, out *dto.CategoryResponse, err error) error {
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "categoría no encontrada")
	}
	return c.JSON(out)
}
