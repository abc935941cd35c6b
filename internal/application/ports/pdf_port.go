package ports

import (
	"context"

	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
)

// ReceiptGenerator genera el comprobante PDF de una venta.
type ReceiptGenerator interface {
	GenerateSaleReceipt(ctx context.Context, sale *entity.Sale, product *entity.Product) ([]byte, error)
}
