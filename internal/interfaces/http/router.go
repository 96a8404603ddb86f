package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panaderia-api/internal/application/inventory"
	"github.com/jhoicas/panaderia-api/internal/application/production"
	"github.com/jhoicas/panaderia-api/internal/application/sales"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Production *production.Engine
	Sales      *sales.Engine
	Receipts   *inventory.ReceiptUseCase
	Kardex     *inventory.KardexUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Producción
	prod := api.Group("/produccion")
	productionHandler := NewProductionHandler(deps.Production)
	prod.Get("/", productionHandler.List)
	prod.Post("/validar-stock", productionHandler.ValidateStock)
	prod.Post("/ejecutar", productionHandler.Execute)
	prod.Get("/trazabilidad/:id", productionHandler.Trace)

	// Ventas (las rutas fijas van antes de /:id)
	ventas := api.Group("/ventas")
	salesHandler := NewSalesHandler(deps.Sales)
	ventas.Post("/registrar", salesHandler.Register)
	ventas.Get("/sugerencias-descuento", salesHandler.DiscountSuggestions)
	ventas.Get("/:id", salesHandler.GetByID)
	ventas.Get("/:id/comprobante", salesHandler.Receipt)
	ventas.Post("/:id/anular", salesHandler.Cancel)

	// Ingresos de insumos
	ingresos := api.Group("/ingresos")
	receiptHandler := NewReceiptHandler(deps.Receipts)
	ingresos.Post("/", receiptHandler.Create)
	ingresos.Post("/:id/completar", receiptHandler.Complete)
	ingresos.Post("/:id/anular", receiptHandler.Void)

	// Kardex y lotes
	kardexHandler := NewKardexHandler(deps.Kardex)
	insumos := api.Group("/insumos")
	insumos.Get("/:id/lotes", kardexHandler.PreviewLots)
	insumos.Get("/:id/kardex", kardexHandler.MaterialKardex)
	insumos.Get("/:id/conciliacion", kardexHandler.Reconcile)
	api.Get("/productos/:id/kardex", kardexHandler.ProductKardex)
}
