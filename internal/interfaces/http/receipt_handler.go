package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panaderia-api/internal/application/dto"
	"github.com/jhoicas/panaderia-api/internal/application/inventory"
)

// ReceiptHandler ingresos de insumos: creación, completado y anulación.
type ReceiptHandler struct {
	uc *inventory.ReceiptUseCase
	rv *requestValidator
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *inventory.ReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc, rv: newRequestValidator()}
}

// Create godoc
// @Summary      Registrar ingreso de insumos
// @Description  Un ingreso COMPLETADO activa sus lotes y registra una ENTRADA por lote.
// @Tags         ingresos
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateReceiptRequest  true  "cabecera y detalles"
// @Success      201   {object}  dto.ReceiptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ingresos [post]
func (h *ReceiptHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReceiptRequest
	if ok, err := h.rv.bind(c, &in); !ok {
		return err
	}
	out, err := h.uc.CreateReceipt(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Complete godoc
// @Summary      Completar ingreso
// @Tags         ingresos
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "ID de ingreso"
// @Param        body  body      dto.ReceiptActionRequest  true  "id_user"
// @Success      200   {object}  dto.ReceiptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ingresos/{id}/completar [post]
func (h *ReceiptHandler) Complete(c *fiber.Ctx) error {
	id, valid, err := idParam(c)
	if !valid {
		return err
	}
	var in dto.ReceiptActionRequest
	if ok, err := h.rv.bind(c, &in); !ok {
		return err
	}
	out, err := h.uc.CompleteReceipt(c.Context(), id, in.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Void godoc
// @Summary      Anular ingreso
// @Description  Solo si ningún lote fue consumido; en otro caso 409.
// @Tags         ingresos
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "ID de ingreso"
// @Param        body  body      dto.ReceiptActionRequest  true  "id_user"
// @Success      200   {object}  dto.ReceiptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ingresos/{id}/anular [post]
func (h *ReceiptHandler) Void(c *fiber.Ctx) error {
	id, valid, err := idParam(c)
	if !valid {
		return err
	}
	var in dto.ReceiptActionRequest
	if ok, err := h.rv.bind(c, &in); !ok {
		return err
	}
	out, err := h.uc.VoidReceipt(c.Context(), id, in.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
