package dto

import (
	"time"

	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
)

// CreateCategoryRequest alta de categoría. Los tipos y campos se agregan
// después vía los endpoints de mutación del esquema.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateCategoryRequest edición parcial de los atributos planos de la categoría.
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// AddProductTypeRequest alta de un tipo de producto; value se deriva de label.
type AddProductTypeRequest struct {
	Label string `json:"label"`
}

// AddSpecFieldRequest alta de un campo técnico (en un tipo o en los defaults).
// Para type=select, Options es la entrada separada por comas del editor.
type AddSpecFieldRequest struct {
	Label   string `json:"label"`
	Type    string `json:"type"` // text | number | select
	Unit    string `json:"unit,omitempty"`
	Options string `json:"options,omitempty"`
}

// SpecFieldResponse campo técnico tal como lo consume el formulario.
type SpecFieldResponse struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Type    string   `json:"type"`
	Unit    string   `json:"unit,omitempty"`
	Options []string `json:"options,omitempty"`
	// Incomplete marca un select sin opciones: dato a corregir en el editor.
	Incomplete bool `json:"incomplete,omitempty"`
}

// ProductTypeResponse tipo de producto con su lista de campos propia (si la tiene).
type ProductTypeResponse struct {
	Value        string              `json:"value"`
	Label        string              `json:"label"`
	Fields       []SpecFieldResponse `json:"fields,omitempty"`
	InheritsFrom bool                `json:"inherits_defaults"`
}

// CategoryResponse categoría completa con su esquema.
type CategoryResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	IsActive      bool                  `json:"is_active"`
	ProductTypes  []ProductTypeResponse `json:"product_types"`
	DefaultFields []SpecFieldResponse   `json:"default_fields"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// CategoryListResponse listado de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}

// EffectiveFieldsResponse campos vigentes para un par categoría/tipo.
type EffectiveFieldsResponse struct {
	CategoryID  string              `json:"category_id"`
	ProductType string              `json:"product_type"`
	Fields      []SpecFieldResponse `json:"fields"`
}

// ToSpecFieldResponse convierte un campo de entidad a su DTO.
func ToSpecFieldResponse(f entity.SpecField) SpecFieldResponse {
	return SpecFieldResponse{
		Name:       f.Name,
		Label:      f.Label,
		Type:       string(f.Type),
		Unit:       f.Unit,
		Options:    f.Options,
		Incomplete: f.Type == entity.FieldSelect && len(f.Options) == 0,
	}
}

// ToSpecFieldResponses convierte una lista de campos.
func ToSpecFieldResponses(fields []entity.SpecField) []SpecFieldResponse {
	out := make([]SpecFieldResponse, 0, len(fields))
	for _, f := range fields {
		out = append(out, ToSpecFieldResponse(f))
	}
	return out
}

// ToCategoryResponse convierte la entidad al DTO completo.
func ToCategoryResponse(c *entity.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	types := make([]ProductTypeResponse, 0, len(c.ProductTypes))
	for _, t := range c.ProductTypes {
		types = append(types, ProductTypeResponse{
			Value:        t.Value,
			Label:        t.Label,
			Fields:       ToSpecFieldResponses(t.Fields),
			InheritsFrom: !t.OwnsFields(),
		})
	}
	return &CategoryResponse{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		IsActive:      c.IsActive,
		ProductTypes:  types,
		DefaultFields: ToSpecFieldResponses(c.DefaultFields),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
