package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panaderia-api/internal/application/dto"
	"github.com/jhoicas/panaderia-api/internal/application/sales"
)

// SalesHandler ventas, anulaciones, comprobante y sugerencias de descuento.
type SalesHandler struct {
	engine *sales.Engine
	rv     *requestValidator
	now    func() time.Time
}

// NewSalesHandler construye el handler.
func NewSalesHandler(engine *sales.Engine) *SalesHandler {
	return &SalesHandler{engine: engine, rv: newRequestValidator(), now: time.Now}
}

// Register godoc
// @Summary      Registrar venta
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RegisterSaleRequest  true  "items, metodo_pago, observaciones"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/ventas/registrar [post]
func (h *SalesHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterSaleRequest
	if ok, err := h.rv.bind(c, &in); !ok {
		return err
	}
	out, err := h.engine.RegisterSale(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Cancel godoc
// @Summary      Anular venta
// @Description  Restaura el stock de cada línea con una ENTRADA compensatoria.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true   "ID de venta"
// @Param        body  body      dto.CancelSaleRequest  false  "id_user"
// @Success      200   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/anular [post]
func (h *SalesHandler) Cancel(c *fiber.Ctx) error {
	id, valid, err := idParam(c)
	if !valid {
		return err
	}
	var in dto.CancelSaleRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	out, err := h.engine.CancelSale(c.Context(), id, in.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de venta
// @Tags         ventas
// @Produce      json
// @Param        id   path      string  true  "ID de venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [get]
func (h *SalesHandler) GetByID(c *fiber.Ctx) error {
	id, valid, err := idParam(c)
	if !valid {
		return err
	}
	out, err := h.engine.GetSale(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Comprobante PDF de la venta
// @Tags         ventas
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de venta"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/comprobante [get]
func (h *SalesHandler) Receipt(c *fiber.Ctx) error {
	id, valid, err := idParam(c)
	if !valid {
		return err
	}
	doc, filename, err := h.engine.ReceiptPDF(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(doc)
}

// DiscountSuggestions godoc
// @Summary      Sugerencias de descuento por antigüedad
// @Description  Informativo: 1 día 30%, 2 días 50%, 3 o más 70%. No modifica precios.
// @Tags         ventas
// @Produce      json
// @Success      200  {array}  dto.DiscountSuggestionDTO
// @Router       /api/ventas/sugerencias-descuento [get]
func (h *SalesHandler) DiscountSuggestions(c *fiber.Ctx) error {
	list, err := h.engine.SuggestDiscounts(c.Context(), h.now())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":       len(list),
		"sugerencias": list,
	})
}
