package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
)

// CreateSaleRequest registra la venta de un producto.
type CreateSaleRequest struct {
	ProductID  string          `json:"product_id"`
	BuyerName  string          `json:"buyer_name"`
	BuyerPhone string          `json:"buyer_phone,omitempty"`
	Price      decimal.Decimal `json:"price"`
	Notes      string          `json:"notes,omitempty"`
	SoldAt     *time.Time      `json:"sold_at,omitempty"` // nil = ahora
}

// SaleResponse venta registrada.
type SaleResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	BuyerName  string          `json:"buyer_name"`
	BuyerPhone string          `json:"buyer_phone,omitempty"`
	Price      decimal.Decimal `json:"price"`
	Notes      string          `json:"notes,omitempty"`
	SoldAt     time.Time       `json:"sold_at"`
	CreatedAt  time.Time       `json:"created_at"`
}

// SaleListResponse listado paginado de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// ToSaleResponse convierte la entidad al DTO.
func ToSaleResponse(s *entity.Sale) *SaleResponse {
	if s == nil {
		return nil
	}
	return &SaleResponse{
		ID:         s.ID,
		ProductID:  s.ProductID,
		BuyerName:  s.BuyerName,
		BuyerPhone: s.BuyerPhone,
		Price:      s.Price,
		Notes:      s.Notes,
		SoldAt:     s.SoldAt,
		CreatedAt:  s.CreatedAt,
	}
}
