package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panaderia-api/internal/application/dto"
	"github.com/jhoicas/panaderia-api/internal/application/production"
)

// ProductionHandler expone la ejecución de recetas y su trazabilidad.
type ProductionHandler struct {
	engine *production.Engine
	rv     *requestValidator
}

// NewProductionHandler construye el handler.
func NewProductionHandler(engine *production.Engine) *ProductionHandler {
	return &ProductionHandler{engine: engine, rv: newRequestValidator()}
}

// ValidateStock godoc
// @Summary      Validar stock para una receta
// @Description  Compara lo requerido por batch contra el stock derivado de lotes. No escribe nada.
// @Tags         produccion
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ValidateStockRequest  true  "id_receta, cantidad_batch"
// @Success      200   {object}  dto.StockValidationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/produccion/validar-stock [post]
func (h *ProductionHandler) ValidateStock(c *fiber.Ctx) error {
	var in dto.ValidateStockRequest
	if ok, err := h.rv.bind(c, &in); !ok {
		return err
	}
	out, err := h.engine.ValidateStock(c.Context(), in.RecipeID, in.BatchSize)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Execute godoc
// @Summary      Ejecutar producción
// @Description  Descuenta insumos por FEFO y acredita el producto terminado en una sola transacción.
// @Tags         produccion
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ExecuteProductionRequest  true  "id_receta, cantidad_batch, id_user, observaciones"
// @Success      201   {object}  dto.ProductionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/produccion/ejecutar [post]
func (h *ProductionHandler) Execute(c *fiber.Ctx) error {
	var in dto.ExecuteProductionRequest
	if ok, err := h.rv.bind(c, &in); !ok {
		return err
	}
	out, err := h.engine.Execute(c.Context(), production.ExecuteInput{
		RecipeID:  in.RecipeID,
		BatchSize: in.BatchSize,
		UserID:    in.UserID,
		Notes:     in.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Trace godoc
// @Summary      Trazabilidad de una producción
// @Tags         produccion
// @Produce      json
// @Param        id   path      string  true  "ID de producción"
// @Success      200  {object}  dto.ProductionTraceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produccion/trazabilidad/{id} [get]
func (h *ProductionHandler) Trace(c *fiber.Ctx) error {
	id, valid, err := idParam(c)
	if !valid {
		return err
	}
	out, err := h.engine.Trace(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar producciones
// @Tags         produccion
// @Produce      json
// @Param        desde   query     string  false  "YYYY-MM-DD"
// @Param        hasta   query     string  false  "YYYY-MM-DD"
// @Param        limit   query     int     false  "máx 100"
// @Param        offset  query     int     false  "desplazamiento"
// @Success      200     {object}  dto.ProductionListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/produccion [get]
func (h *ProductionHandler) List(c *fiber.Ctx) error {
	from, to, ok := dateRangeQuery(c)
	if !ok {
		return invalidDates(c)
	}
	out, err := h.engine.ListRuns(c.Context(), from, to, pageFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
