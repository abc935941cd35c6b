package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/horeca-stock/internal/application/dto"
	"github.com/tu-usuario/horeca-stock/internal/application/ports"
	"github.com/tu-usuario/horeca-stock/internal/domain"
	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
	"github.com/tu-usuario/horeca-stock/internal/domain/repository"
)

// SaleTxRunner ejecuta un callback con repos atados a una transacción:
// marcar el producto como vendido, registrar la venta y asentar el ingreso en
// el libro deben confirmar o deshacerse juntos.
type SaleTxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		ledgerRepo repository.LedgerRepository,
	) error) error
}

// SaleUseCase registra ventas y genera comprobantes.
type SaleUseCase struct {
	tx          SaleTxRunner
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	receipts    ports.ReceiptGenerator
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(tx SaleTxRunner, saleRepo repository.SaleRepository, productRepo repository.ProductRepository, receipts ports.ReceiptGenerator) *SaleUseCase {
	return &SaleUseCase{tx: tx, saleRepo: saleRepo, productRepo: productRepo, receipts: receipts}
}

// Create registra la venta de un producto disponible. En una sola transacción:
// producto → sold, alta de Sale y entrada income en el libro.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.ProductID == "" || in.BuyerName == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	soldAt := time.Now()
	if in.SoldAt != nil {
		soldAt = *in.SoldAt
	}
	sale := &entity.Sale{
		ID:         uuid.New().String(),
		ProductID:  in.ProductID,
		BuyerName:  in.BuyerName,
		BuyerPhone: in.BuyerPhone,
		Price:      in.Price,
		Notes:      in.Notes,
		SoldAt:     soldAt,
		CreatedAt:  time.Now(),
	}

	err := uc.tx.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		product, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Status == entity.ProductSold {
			return domain.ErrProductSold
		}
		product.Status = entity.ProductSold
		product.UpdatedAt = time.Now()
		if err := productRepo.Update(product); err != nil {
			return err
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		return ledgerRepo.Create(&entity.LedgerEntry{
			ID:          uuid.New().String(),
			Kind:        entity.LedgerIncome,
			Amount:      sale.Price,
			Description: fmt.Sprintf("Venta: %s", product.Name),
			SaleID:      sale.ID,
			OccurredAt:  soldAt,
			CreatedAt:   time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return dto.ToSaleResponse(sale), nil
}

// GetByID obtiene una venta.
func (uc *SaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return dto.ToSaleResponse(sale), nil
}

// List lista ventas con paginación.
func (uc *SaleUseCase) List(page dto.PageRequest) (*dto.SaleListResponse, error) {
	page.DefaultPage()
	list, err := uc.saleRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *dto.ToSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Receipt genera el comprobante PDF de la venta.
func (uc *SaleUseCase) Receipt(ctx context.Context, saleID string) ([]byte, error) {
	if uc.receipts == nil {
		return nil, fmt.Errorf("generación de comprobantes no configurada")
	}
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(sale.ProductID)
	if err != nil {
		return nil, err
	}
	return uc.receipts.GenerateSaleReceipt(ctx, sale, product)
}
