package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panaderia-api/internal/application/dto"
	"github.com/jhoicas/panaderia-api/internal/application/inventory"
)

// KardexHandler consultas de lotes y kardex.
type KardexHandler struct {
	uc *inventory.KardexUseCase
}

// NewKardexHandler construye el handler.
func NewKardexHandler(uc *inventory.KardexUseCase) *KardexHandler {
	return &KardexHandler{uc: uc}
}

// PreviewLots godoc
// @Summary      Lotes activos de un insumo en orden FEFO
// @Tags         insumos
// @Produce      json
// @Param        id   path      string  true  "ID de insumo"
// @Success      200  {object}  dto.LotPreviewResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/insumos/{id}/lotes [get]
func (h *KardexHandler) PreviewLots(c *fiber.Ctx) error {
	id, valid, err := idParam(c)
	if !valid {
		return err
	}
	out, err := h.uc.PreviewLots(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// MaterialKardex godoc
// @Summary      Kardex de un insumo
// @Tags         insumos
// @Produce      json
// @Param        id      path      string  true   "ID de insumo"
// @Param        desde   query     string  false  "YYYY-MM-DD"
// @Param        hasta   query     string  false  "YYYY-MM-DD"
// @Param        limit   query     int     false  "máx 100"
// @Param        offset  query     int     false  "desplazamiento"
// @Success      200     {object}  dto.MaterialKardexResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/insumos/{id}/kardex [get]
func (h *KardexHandler) MaterialKardex(c *fiber.Ctx) error {
	id, valid, err := idParam(c)
	if !valid {
		return err
	}
	f, ok := kardexFilter(c)
	if !ok {
		return invalidDates(c)
	}
	out, err := h.uc.ListMaterialKardex(c.Context(), id, f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Reconcile godoc
// @Summary      Conciliación lotes vs kardex de un insumo
// @Tags         insumos
// @Produce      json
// @Param        id   path      string  true  "ID de insumo"
// @Success      200  {object}  dto.BalanceCheckResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/insumos/{id}/conciliacion [get]
func (h *KardexHandler) Reconcile(c *fiber.Ctx) error {
	id, valid, err := idParam(c)
	if !valid {
		return err
	}
	out, err := h.uc.VerifyMaterialBalance(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ProductKardex godoc
// @Summary      Kardex de un producto terminado
// @Tags         productos
// @Produce      json
// @Param        id      path      string  true   "ID de producto"
// @Param        desde   query     string  false  "YYYY-MM-DD"
// @Param        hasta   query     string  false  "YYYY-MM-DD"
// @Param        limit   query     int     false  "máx 100"
// @Param        offset  query     int     false  "desplazamiento"
// @Success      200     {object}  dto.ProductKardexResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/kardex [get]
func (h *KardexHandler) ProductKardex(c *fiber.Ctx) error {
	id, valid, err := idParam(c)
	if !valid {
		return err
	}
	f, ok := kardexFilter(c)
	if !ok {
		return invalidDates(c)
	}
	out, err := h.uc.ListProductKardex(c.Context(), id, f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func kardexFilter(c *fiber.Ctx) (dto.KardexFilter, bool) {
	from, to, ok := dateRangeQuery(c)
	return dto.KardexFilter{From: from, To: to, PageRequest: pageFromQuery(c)}, ok
}
