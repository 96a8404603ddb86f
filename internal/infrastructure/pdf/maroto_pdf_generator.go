// Package pdf genera el comprobante de venta de la panadería.
//
// Layout de la página A5:
//
//	┌──────────────────────────────────────────────┐
//	│  HEADER: Negocio          │  N° Venta + Fecha │
//	│  ──────────────────────────────────────────  │
//	│  Método de pago / Estado / Observaciones      │
//	│  ──────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Dto | Sub  │
//	│  ──────────────────────────────────────────  │
//	│  TOTAL                                        │
//	│  QR con número y total                        │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/panaderia-api/internal/application/dto"
	"github.com/jhoicas/panaderia-api/internal/application/sales"
)

var _ sales.ReceiptPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 122, Green: 72, Blue: 32}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// Separadores de miles como en Colombia (1.500.000).
var printer = message.NewPrinter(language.MustParse("es-CO"))

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa sales.ReceiptPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	business string
}

// NewMarotoPDFGenerator construye el generador. business es el nombre impreso en el encabezado.
func NewMarotoPDFGenerator(business string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{business: business}
}

// GenerateSaleReceipt genera el comprobante y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateSaleReceipt(_ context.Context, sale *dto.SaleResponse, names map[string]string) ([]byte, error) {
	if sale == nil {
		return nil, fmt.Errorf("pdf: venta nula")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante "+sale.Number, true).
		WithAuthor(g.business, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.business, sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(infoRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(sale.Lines, names)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(sale.Total))
	m.AddRows(qrRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y número + fecha (der).
func headerRow(business string, sale *dto.SaleResponse) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New(business, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(6).Add(
			text.New("COMPROBANTE DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(sale.Number, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 6,
			}),
			text.New("Fecha: "+formatDate(sale.CreatedAt), props.Text{
				Size: 7, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

func infoRow(sale *dto.SaleResponse) core.Row {
	r := row.New(12)
	left := col.New(8).Add(
		text.New("Método de pago: "+sale.PaymentMethod, props.Text{Size: 8, Top: 1}),
		text.New(nonEmpty(sale.Notes, "Sin observaciones"), props.Text{Size: 7, Top: 6, Color: colorGray}),
	)
	right := col.New(4)
	if sale.VoidedAt != nil {
		right.Add(text.New("ANULADA "+formatDate(*sale.VoidedAt), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorRed, Top: 1,
		}))
	}
	return r.Add(left, right)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 5, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Dto%", 1, align.Center),
		h("Subtotal", 3, align.Right),
	)
}

// tableDetailRows: una fila por línea de venta.
func tableDetailRows(lines []dto.SaleLineDTO, names map[string]string) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		name := names[l.ProductID]
		if name == "" {
			name = l.ProductID
		}
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(l.Quantity.String(), props.Text{Size: 7, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(name, props.Text{Size: 7, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(formatMoney(l.UnitPrice), props.Text{Size: 7, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(l.DiscountPct.StringFixed(0)+"%", props.Text{Size: 7, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(formatMoney(l.Subtotal), props.Text{Size: 7, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New(formatMoney(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// qrRow: QR con número y total para verificación en caja.
func qrRow(sale *dto.SaleResponse) core.Row {
	data := fmt.Sprintf("%s|%s|%s", sale.Number, sale.Total.StringFixed(2), sale.CreatedAt.UTC().Format(time.RFC3339))
	return row.New(30).Add(
		col.New(4).Add(code.NewQr(data, props.Rect{Percent: 90, Center: true})),
		col.New(8).Add(text.New("Gracias por su compra.", props.Text{
			Size: 8, Top: 10, Left: 3, Color: colorGray,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney pesos sin decimales con separador de miles local. Ej: 25000 → "$25.000".
func formatMoney(v decimal.Decimal) string {
	return "$" + printer.Sprintf("%d", v.Round(0).IntPart())
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}
