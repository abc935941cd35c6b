package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
)

// CreateProductRequest alta de producto. RawSpecs lleva los valores crudos del
// formulario de especificaciones; el usecase los valida y codifica contra los
// campos efectivos del par categoría/tipo.
type CreateProductRequest struct {
	CategoryID        string            `json:"category_id"`
	ProductType       string            `json:"product_type,omitempty"`
	Name              string            `json:"name"`
	Material          string            `json:"material,omitempty"`
	Notes             string            `json:"notes,omitempty"`
	PurchasePrice     decimal.Decimal   `json:"purchase_price"`
	SalePrice         decimal.Decimal   `json:"sale_price"`
	NegotiationMargin decimal.Decimal   `json:"negotiation_margin"`
	NegotiationType   string            `json:"negotiation_type,omitempty"` // fixed | percent
	RawSpecs          map[string]string `json:"raw_specs,omitempty"`
}

// UpdateProductRequest edición parcial. RawSpecs nil = no tocar las
// especificaciones; RawSpecs no nil = re-codificar desde cero.
type UpdateProductRequest struct {
	CategoryID        *string           `json:"category_id,omitempty"`
	ProductType       *string           `json:"product_type,omitempty"`
	Name              *string           `json:"name,omitempty"`
	Material          *string           `json:"material,omitempty"`
	Notes             *string           `json:"notes,omitempty"`
	PurchasePrice     *decimal.Decimal  `json:"purchase_price,omitempty"`
	SalePrice         *decimal.Decimal  `json:"sale_price,omitempty"`
	NegotiationMargin *decimal.Decimal  `json:"negotiation_margin,omitempty"`
	NegotiationType   *string           `json:"negotiation_type,omitempty"`
	RawSpecs          map[string]string `json:"raw_specs,omitempty"`
}

// ProductResponse producto con sus especificaciones en ambas formas: las
// almacenadas (tipadas) y las crudas para el formulario, decodificadas por el
// codec. Los valores huérfanos por deriva de esquema aparecen en ambas.
type ProductResponse struct {
	ID                string            `json:"id"`
	CategoryID        string            `json:"category_id,omitempty"`
	ProductType       string            `json:"product_type,omitempty"`
	Name              string            `json:"name"`
	Material          string            `json:"material,omitempty"`
	Notes             string            `json:"notes,omitempty"`
	PurchasePrice     decimal.Decimal   `json:"purchase_price"`
	SalePrice         decimal.Decimal   `json:"sale_price"`
	NegotiationMargin decimal.Decimal   `json:"negotiation_margin"`
	NegotiationType   string            `json:"negotiation_type,omitempty"`
	Status            string            `json:"status"`
	ExtraSpecs        map[string]any    `json:"extra_specs,omitempty"`
	RawSpecs          map[string]string `json:"raw_specs,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// ProductListResponse listado paginado.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ImportProductsResponse resultado de la importación CSV.
type ImportProductsResponse struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Warnings []string `json:"warnings,omitempty"`
}

// ToProductResponse convierte la entidad al DTO (rawSpecs ya decodificados).
func ToProductResponse(p *entity.Product, rawSpecs map[string]string) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:                p.ID,
		CategoryID:        p.CategoryID,
		ProductType:       p.ProductType,
		Name:              p.Name,
		Material:          p.Material,
		Notes:             p.Notes,
		PurchasePrice:     p.PurchasePrice,
		SalePrice:         p.SalePrice,
		NegotiationMargin: p.NegotiationMargin,
		NegotiationType:   p.NegotiationType,
		Status:            p.Status,
		ExtraSpecs:        p.ExtraSpecs,
		RawSpecs:          rawSpecs,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
