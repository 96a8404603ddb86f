package sales

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/panaderia-api/internal/application/dto"
	"github.com/jhoicas/panaderia-api/internal/application/inventory"
	"github.com/jhoicas/panaderia-api/internal/domain"
	"github.com/jhoicas/panaderia-api/internal/domain/entity"
	domaininv "github.com/jhoicas/panaderia-api/internal/domain/inventory"
	"github.com/jhoicas/panaderia-api/pkg/logger"
)

// Motivos de los movimientos de producto terminado generados por ventas.
const (
	ReasonSale       = "venta"
	ReasonSaleVoided = "anulación de venta"
)

var hundred = decimal.NewFromInt(100)

// Engine registra y anula ventas sobre el contador de stock de productos terminados.
type Engine struct {
	repos    inventory.Repos
	txRunner inventory.TxRunner
	ledger   *inventory.MovementLedger
	pdf      ReceiptPDFGenerator
	log      *logger.Logger
	now      func() time.Time
}

// NewEngine construye el motor de ventas. pdf puede ser nil si no se exponen comprobantes.
func NewEngine(repos inventory.Repos, txRunner inventory.TxRunner, ledger *inventory.MovementLedger, pdf ReceiptPDFGenerator, log *logger.Logger) *Engine {
	return &Engine{repos: repos, txRunner: txRunner, ledger: ledger, pdf: pdf, log: log, now: time.Now}
}

// validateItems revisa cantidades, descuentos y precios; devuelve la cantidad total pedida
// por producto y los ids en orden de aparición.
func validateItems(items []dto.SaleItemRequest) (map[string]decimal.Decimal, []string, error) {
	if len(items) == 0 {
		return nil, nil, domain.ErrInvalidInput
	}
	needed := make(map[string]decimal.Decimal, len(items))
	order := make([]string, 0, len(items))
	for _, it := range items {
		if it.ProductID == "" || !it.Quantity.GreaterThan(decimal.Zero) || !domaininv.FitsQuantityScale(it.Quantity) {
			return nil, nil, domain.ErrInvalidInput
		}
		if it.DiscountPct.LessThan(decimal.Zero) || it.DiscountPct.GreaterThan(hundred) {
			return nil, nil, domain.ErrInvalidInput
		}
		if it.UnitPrice.LessThan(decimal.Zero) {
			return nil, nil, domain.ErrInvalidInput
		}
		if _, seen := needed[it.ProductID]; !seen {
			order = append(order, it.ProductID)
		}
		needed[it.ProductID] = needed[it.ProductID].Add(it.Quantity)
	}
	return needed, order, nil
}

func validPayment(m string) bool {
	switch m {
	case entity.PaymentCash, entity.PaymentCard, entity.PaymentTransfer:
		return true
	}
	return false
}

// shortages productos cuyo stock no cubre lo pedido.
func shortages(goods map[string]*entity.FinishedGood, needed map[string]decimal.Decimal, order []string) []domain.StockShortage {
	var out []domain.StockShortage
	for _, id := range order {
		g := goods[id]
		if g.StockActual.LessThan(needed[id]) {
			out = append(out, domain.StockShortage{ID: id, Name: g.Name, Required: needed[id], Available: g.StockActual})
		}
	}
	return out
}

// RegisterSale valida stock antes de escribir y luego, en una transacción: bloquea los productos
// (orden de id), revalida, crea cabecera VENTA-YYYYMM-N y líneas, descuenta el contador
// y registra una SALIDA MPT por línea.
func (e *Engine) RegisterSale(ctx context.Context, in dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	if !validPayment(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	needed, order, err := validateItems(in.Items)
	if err != nil {
		return nil, err
	}
	goods, err := e.repos.Goods.GetByIDs(ctx, order)
	if err != nil {
		return nil, err
	}
	for _, id := range order {
		if goods[id] == nil {
			return nil, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
		}
	}
	if short := shortages(goods, needed, order); len(short) > 0 {
		return nil, &domain.InsufficientStockError{Items: short}
	}

	ids := append([]string(nil), order...)
	sort.Strings(ids)
	now := e.now()
	var sale *entity.Sale

	err = e.txRunner.Run(ctx, func(ctx context.Context, r inventory.Repos) error {
		locked, err := r.Goods.GetForUpdate(ctx, ids)
		if err != nil {
			return err
		}
		for _, id := range order {
			if locked[id] == nil {
				return domain.ErrNotFound
			}
		}
		if short := shortages(locked, needed, order); len(short) > 0 {
			return &domain.InsufficientStockError{Items: short}
		}

		number, err := inventory.NextDocumentNumber(ctx, r, domaininv.PrefixSale, now)
		if err != nil {
			return err
		}
		sale = &entity.Sale{
			ID:            uuid.New().String(),
			Number:        number,
			Status:        entity.SaleActive,
			PaymentMethod: in.PaymentMethod,
			Total:         decimal.Zero,
			Notes:         in.Notes,
			CreatedBy:     in.UserID,
			CreatedAt:     now,
		}
		for _, it := range in.Items {
			price := it.UnitPrice
			if price.IsZero() {
				price = locked[it.ProductID].Price
			}
			line := entity.SaleLine{
				ID:          uuid.New().String(),
				SaleID:      sale.ID,
				ProductID:   it.ProductID,
				Quantity:    it.Quantity,
				UnitPrice:   price,
				DiscountPct: it.DiscountPct,
				Subtotal:    domaininv.LineSubtotal(price, it.DiscountPct, it.Quantity).Round(2),
			}
			sale.Lines = append(sale.Lines, line)
			sale.Total = sale.Total.Add(line.Subtotal)
		}
		if err := r.Sales.Create(ctx, sale); err != nil {
			return err
		}

		stock := make(map[string]decimal.Decimal, len(locked))
		for id, g := range locked {
			stock[id] = g.StockActual
		}
		for i := range sale.Lines {
			line := &sale.Lines[i]
			if err := r.Sales.CreateLine(ctx, line); err != nil {
				return err
			}
			before := stock[line.ProductID]
			after := before.Sub(line.Quantity)
			if err := r.Goods.UpdateStock(ctx, line.ProductID, after); err != nil {
				return err
			}
			stock[line.ProductID] = after
			if _, err := e.ledger.RecordProduct(ctx, r, inventory.ProductMovementInput{
				Direction:      entity.DirectionOut,
				ProductID:      line.ProductID,
				Quantity:       line.Quantity,
				QuantityBefore: before,
				QuantityAfter:  after,
				OriginType:     entity.OriginSale,
				OriginID:       sale.ID,
				Reason:         ReasonSale,
				UserID:         in.UserID,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, e.wrap("ventas.registrar", err)
	}

	e.log.Info().Str("venta", sale.Number).Str("total", sale.Total.String()).Int("lineas", len(sale.Lines)).Msg("venta registrada")
	return SaleToDTO(sale), nil
}

// CancelSale ACTIVA -> ANULADA; restaura el stock de cada línea con una ENTRADA compensatoria.
func (e *Engine) CancelSale(ctx context.Context, saleID, userID string) (*dto.SaleResponse, error) {
	if saleID == "" {
		return nil, domain.ErrInvalidInput
	}
	var sale *entity.Sale
	err := e.txRunner.Run(ctx, func(ctx context.Context, r inventory.Repos) error {
		var err error
		sale, err = r.Sales.GetForUpdate(ctx, saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if err := sale.Void(userID, e.now()); err != nil {
			return err
		}
		if err := r.Sales.UpdateStatus(ctx, sale); err != nil {
			return err
		}

		ids := make([]string, 0, len(sale.Lines))
		seen := make(map[string]bool, len(sale.Lines))
		for _, ln := range sale.Lines {
			if !seen[ln.ProductID] {
				seen[ln.ProductID] = true
				ids = append(ids, ln.ProductID)
			}
		}
		sort.Strings(ids)
		locked, err := r.Goods.GetForUpdate(ctx, ids)
		if err != nil {
			return err
		}
		stock := make(map[string]decimal.Decimal, len(locked))
		for id, g := range locked {
			stock[id] = g.StockActual
		}
		for _, ln := range sale.Lines {
			if locked[ln.ProductID] == nil {
				return domain.ErrNotFound
			}
			before := stock[ln.ProductID]
			after := before.Add(ln.Quantity)
			if err := r.Goods.UpdateStock(ctx, ln.ProductID, after); err != nil {
				return err
			}
			stock[ln.ProductID] = after
			if _, err := e.ledger.RecordProduct(ctx, r, inventory.ProductMovementInput{
				Direction:      entity.DirectionIn,
				ProductID:      ln.ProductID,
				Quantity:       ln.Quantity,
				QuantityBefore: before,
				QuantityAfter:  after,
				OriginType:     entity.OriginSale,
				OriginID:       sale.ID,
				Reason:         ReasonSaleVoided,
				UserID:         userID,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, e.wrap("ventas.anular", err)
	}
	e.log.Info().Str("venta", sale.Number).Msg("venta anulada")
	return SaleToDTO(sale), nil
}

// GetSale venta con sus líneas.
func (e *Engine) GetSale(ctx context.Context, saleID string) (*dto.SaleResponse, error) {
	sale, err := e.repos.Sales.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return SaleToDTO(sale), nil
}

// ReceiptPDF comprobante de la venta. Devuelve los bytes y el nombre de archivo sugerido.
func (e *Engine) ReceiptPDF(ctx context.Context, saleID string) ([]byte, string, error) {
	if e.pdf == nil {
		return nil, "", fmt.Errorf("comprobante: generador no configurado")
	}
	sale, err := e.GetSale(ctx, saleID)
	if err != nil {
		return nil, "", err
	}
	ids := make([]string, 0, len(sale.Lines))
	for _, ln := range sale.Lines {
		ids = append(ids, ln.ProductID)
	}
	goods, err := e.repos.Goods.GetByIDs(ctx, ids)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: obtener productos: %w", err)
	}
	names := make(map[string]string, len(goods))
	for id, g := range goods {
		names[id] = g.Name
	}
	doc, err := e.pdf.GenerateSaleReceipt(ctx, sale, names)
	if err != nil {
		return nil, "", err
	}
	return doc, sale.Number + ".pdf", nil
}

// wrap deja pasar los errores de negocio y envuelve las fallas de escritura.
func (e *Engine) wrap(op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrAlreadyVoided),
		errors.Is(err, domain.ErrInvalidTransition):
		return err
	}
	e.log.Error().Err(err).Str("op", op).Msg("transacción de venta revertida")
	return &domain.ExecutionError{Op: op, Err: err}
}

// SaleToDTO convierte una venta a su DTO.
func SaleToDTO(s *entity.Sale) *dto.SaleResponse {
	out := &dto.SaleResponse{
		ID:            s.ID,
		Number:        s.Number,
		Status:        string(s.Status),
		PaymentMethod: s.PaymentMethod,
		Total:         s.Total,
		Notes:         s.Notes,
		CreatedBy:     s.CreatedBy,
		CreatedAt:     s.CreatedAt,
		VoidedAt:      s.VoidedAt,
		Lines:         make([]dto.SaleLineDTO, 0, len(s.Lines)),
	}
	for _, ln := range s.Lines {
		out.Lines = append(out.Lines, dto.SaleLineDTO{
			ID:          ln.ID,
			ProductID:   ln.ProductID,
			Quantity:    ln.Quantity,
			UnitPrice:   ln.UnitPrice,
			DiscountPct: ln.DiscountPct,
			Subtotal:    ln.Subtotal,
		})
	}
	return out
}
