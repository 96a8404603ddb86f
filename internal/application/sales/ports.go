package sales

import (
	"context"

	"github.com/jhoicas/panaderia-api/internal/application/dto"
)

// ReceiptPDFGenerator genera el comprobante de venta en PDF.
// names: id de producto -> nombre para mostrar.
type ReceiptPDFGenerator interface {
	GenerateSaleReceipt(ctx context.Context, sale *dto.SaleResponse, names map[string]string) ([]byte, error)
}
