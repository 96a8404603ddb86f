package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panaderia-api/internal/application/dto"
	"github.com/jhoicas/panaderia-api/internal/application/inventory"
	"github.com/jhoicas/panaderia-api/internal/application/production"
	"github.com/jhoicas/panaderia-api/internal/application/sales"
	"github.com/jhoicas/panaderia-api/internal/domain/entity"
	"github.com/jhoicas/panaderia-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/panaderia-api/internal/interfaces/http"
	"github.com/jhoicas/panaderia-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	harina   = "6f1c2a9e-0b7d-4d1e-9a51-1f0c3b2d4e01"
	azucar   = "6f1c2a9e-0b7d-4d1e-9a51-1f0c3b2d4e02"
	pan      = "a3e5d7c9-2b4f-4a6c-8e0d-5b7a9c1e3f01"
	receta   = "c8b6a4d2-1e3f-4b5d-9c7a-2e4f6a8b0d01"
	recibo   = "e2d4f6a8-3c5e-4f7a-8b9c-0d1e2f3a4b01"
	noExiste = "00000000-0000-4000-8000-000000000000"
	user     = "user-1"
)

var t0 = time.Date(2026, 10, 1, 6, 0, 0, 0, time.UTC)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

type stubPDF struct{}

func (stubPDF) GenerateSaleReceipt(_ context.Context, _ *dto.SaleResponse, _ map[string]string) ([]byte, error) {
	return []byte("%PDF-1.7 stub"), nil
}

// buildTestApp arma el router completo sobre el store en memoria:
// harina 50 (vence día 10) + 30 (vence día 90), azúcar 15; receta 6 harina + 1 azúcar, rinde 20.
func buildTestApp(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()
	st := memory.NewStore()
	st.AddMaterial(entity.RawMaterial{ID: harina, Name: "Harina", Unit: "kg"})
	st.AddMaterial(entity.RawMaterial{ID: azucar, Name: "Azúcar", Unit: "kg"})
	st.AddReceipt(entity.GoodsReceipt{ID: recibo, State: entity.ReceiptCompleted})
	exp10, exp90 := t0.AddDate(0, 0, 10), t0.AddDate(0, 0, 90)
	st.AddLot(entity.Lot{ID: "A", ReceiptID: recibo, RawMaterialID: harina, QuantityReceived: d(50), QuantityRemaining: d(50), ExpirationDate: &exp10, UnitCost: d(2), CreatedAt: t0})
	st.AddLot(entity.Lot{ID: "B", ReceiptID: recibo, RawMaterialID: harina, QuantityReceived: d(30), QuantityRemaining: d(30), ExpirationDate: &exp90, UnitCost: d(3), CreatedAt: t0})
	st.AddLot(entity.Lot{ID: "Z", ReceiptID: recibo, RawMaterialID: azucar, QuantityReceived: d(15), QuantityRemaining: d(15), UnitCost: d(4), CreatedAt: t0})
	st.AddGood(entity.FinishedGood{ID: pan, Name: "Pan francés", Price: d(500), StockActual: d(0)})
	st.AddRecipe(entity.Recipe{
		ID: receta, ProductID: pan, Name: "Pan francés", YieldPerBatch: d(20),
		Lines: []entity.RecipeLine{
			{ID: "l1", RecipeID: receta, RawMaterialID: harina, QuantityPerUnit: d(6)},
			{ID: "l2", RecipeID: receta, RawMaterialID: azucar, QuantityPerUnit: d(1)},
		},
	})

	log := logger.Nop()
	ledger := inventory.NewMovementLedger()
	registry := inventory.NewLotRegistry(ledger)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Production: production.NewEngine(st.Repos(), st, ledger, registry, nil, log),
		Sales:      sales.NewEngine(st.Repos(), st, ledger, stubPDF{}, log),
		Receipts:   inventory.NewReceiptUseCase(st, registry, log),
		Kardex:     inventory.NewKardexUseCase(st.Repos(), registry),
	})
	return app, st
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func execute(t *testing.T, app *fiber.App, batch int64) *http.Response {
	return doJSON(t, app, http.MethodPost, "/api/produccion/ejecutar", fiber.Map{
		"id_receta": receta, "cantidad_batch": batch, "id_user": user,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Producción
// ──────────────────────────────────────────────────────────────────────────────

func TestValidarStock_Responde200SinEscribir(t *testing.T) {
	app, st := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/produccion/validar-stock", fiber.Map{
		"id_receta": receta, "cantidad_batch": 14,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.StockValidationResponse
	decode(t, resp, &out)
	assert.False(t, out.Sufficient, "14 batches requieren 84 kg de harina y solo hay 80")
	require.Len(t, out.Ingredients, 2)
	assert.Empty(t, st.MaterialMovements())
}

func TestEjecutar_Responde201YDescuentaFEFO(t *testing.T) {
	app, st := buildTestApp(t)

	resp := execute(t, app, 10)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out dto.ProductionResponse
	decode(t, resp, &out)
	assert.Regexp(t, `^PROD-\d{6}-1$`, out.Number)
	assert.True(t, out.Produced.Equal(d(200)))

	assert.True(t, st.Lot("A").QuantityRemaining.IsZero(), "el lote que vence primero se agota primero")
	assert.True(t, st.Lot("B").QuantityRemaining.Equal(d(20)))
	assert.True(t, st.Good(pan).StockActual.Equal(d(200)))
}

func TestEjecutar_StockInsuficienteResponde400ConDetalle(t *testing.T) {
	app, st := buildTestApp(t)

	resp := execute(t, app, 14)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body struct {
		Code    string `json:"code"`
		Details []struct {
			ID        string          `json:"id"`
			Required  decimal.Decimal `json:"requerido"`
			Available decimal.Decimal `json:"disponible"`
		} `json:"details"`
	}
	decode(t, resp, &body)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
	require.Len(t, body.Details, 1)
	assert.Equal(t, harina, body.Details[0].ID)
	assert.True(t, body.Details[0].Required.Equal(d(84)))
	assert.True(t, body.Details[0].Available.Equal(d(80)))

	assert.Zero(t, st.ProductionCount())
	assert.True(t, st.Lot("A").QuantityRemaining.Equal(d(50)))
}

func TestEjecutar_FallaDeEscrituraResponde500YRevierte(t *testing.T) {
	app, st := buildTestApp(t)
	// 1º y 2º UpdateRemaining son los lotes de harina, el 3º es el azúcar.
	st.FailOn("lots.UpdateRemaining", 3, errors.New("disco lleno"))

	resp := execute(t, app, 10)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "EXECUTION_FAILED", body.Code)
	assert.Contains(t, body.Message, "revertidos")

	assert.Zero(t, st.ProductionCount())
	assert.Empty(t, st.MaterialMovements())
	assert.True(t, st.Lot("A").QuantityRemaining.Equal(d(50)))
	assert.True(t, st.Good(pan).StockActual.IsZero())
}

func TestEjecutar_RecetaInexistenteResponde404(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/produccion/ejecutar", fiber.Map{
		"id_receta": noExiste, "cantidad_batch": 1, "id_user": user,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestEjecutar_SinUsuarioResponde400ConCampos(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/produccion/ejecutar", fiber.Map{
		"id_receta": receta, "cantidad_batch": 1,
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	}
	decode(t, resp, &body)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, "required", body.Details["id_user"])
}

func TestEjecutar_RecetaConIDMalformadoResponde400(t *testing.T) {
	app, st := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/produccion/ejecutar", fiber.Map{
		"id_receta": "rec-pan", "cantidad_batch": 1, "id_user": user,
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	}
	decode(t, resp, &body)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, "uuid", body.Details["id_receta"])
	assert.Zero(t, st.ProductionCount())
}

func TestRutas_IDMalformadoResponde400(t *testing.T) {
	app, _ := buildTestApp(t)

	cases := []struct {
		method, path string
	}{
		{http.MethodGet, "/api/ventas/no-es-uuid"},
		{http.MethodGet, "/api/ventas/no-es-uuid/comprobante"},
		{http.MethodGet, "/api/produccion/trazabilidad/123"},
		{http.MethodGet, "/api/insumos/harina/conciliacion"},
		{http.MethodPost, "/api/ingresos/R1/anular"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			resp := doJSON(t, app, tc.method, tc.path, nil)
			require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			var body dto.ErrorResponse
			decode(t, resp, &body)
			assert.Equal(t, "INVALID_ID", body.Code)
		})
	}
}

func TestTrazabilidad_DevuelveConsumoPorLote(t *testing.T) {
	app, _ := buildTestApp(t)
	var run dto.ProductionResponse
	decode(t, execute(t, app, 10), &run)

	resp := doJSON(t, app, http.MethodGet, "/api/produccion/trazabilidad/"+run.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var trace dto.ProductionTraceResponse
	decode(t, resp, &trace)
	require.Len(t, trace.Consumptions, 3, "lotes A, B y Z")
	require.NotNil(t, trace.Credit)
	assert.True(t, trace.Credit.Quantity.Equal(d(200)))

	missing := doJSON(t, app, http.MethodGet, "/api/produccion/trazabilidad/"+noExiste, nil)
	assert.Equal(t, fiber.StatusNotFound, missing.StatusCode)
}

func TestListarProducciones_FechaInvalidaResponde400(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/produccion?desde=ayer", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	ok := doJSON(t, app, http.MethodGet, "/api/produccion?desde=2026-01-01&limit=5", nil)
	assert.Equal(t, fiber.StatusOK, ok.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestVentas_RegistrarAnularYComprobante(t *testing.T) {
	app, st := buildTestApp(t)
	require.Equal(t, fiber.StatusCreated, execute(t, app, 1).StatusCode) // 20 panes

	resp := doJSON(t, app, http.MethodPost, "/api/ventas/registrar", fiber.Map{
		"items":       []fiber.Map{{"id_producto": pan, "cantidad": 5}},
		"metodo_pago": "EFECTIVO",
		"id_user":     user,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var sale dto.SaleResponse
	decode(t, resp, &sale)
	assert.True(t, sale.Total.Equal(d(2500)))
	assert.True(t, st.Good(pan).StockActual.Equal(d(15)))

	pdf := doJSON(t, app, http.MethodGet, "/api/ventas/"+sale.ID+"/comprobante", nil)
	require.Equal(t, fiber.StatusOK, pdf.StatusCode)
	assert.Equal(t, "application/pdf", pdf.Header.Get("Content-Type"))
	assert.Contains(t, pdf.Header.Get("Content-Disposition"), sale.Number+".pdf")

	cancel := doJSON(t, app, http.MethodPost, "/api/ventas/"+sale.ID+"/anular", fiber.Map{"id_user": user})
	require.Equal(t, fiber.StatusOK, cancel.StatusCode)
	assert.True(t, st.Good(pan).StockActual.Equal(d(20)))

	again := doJSON(t, app, http.MethodPost, "/api/ventas/"+sale.ID+"/anular", nil)
	require.Equal(t, fiber.StatusBadRequest, again.StatusCode)
	var body dto.ErrorResponse
	decode(t, again, &body)
	assert.Equal(t, "ALREADY_VOIDED", body.Code)
}

func TestVentas_MetodoDePagoInvalidoResponde400(t *testing.T) {
	app, st := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/ventas/registrar", fiber.Map{
		"items":       []fiber.Map{{"id_producto": pan, "cantidad": 1}},
		"metodo_pago": "CHEQUE",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, st.SaleCount())
}

func TestVentas_SinStockResponde400(t *testing.T) {
	app, st := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/ventas/registrar", fiber.Map{
		"items":       []fiber.Map{{"id_producto": pan, "cantidad": 1}},
		"metodo_pago": "TARJETA",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
	assert.Zero(t, st.SaleCount())
}

func TestVentas_InexistenteResponde404(t *testing.T) {
	app, _ := buildTestApp(t)
	assert.Equal(t, fiber.StatusNotFound, doJSON(t, app, http.MethodGet, "/api/ventas/"+noExiste, nil).StatusCode)
}

func TestVentas_SugerenciasDeDescuento(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/ventas/sugerencias-descuento", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body struct {
		Total int `json:"total"`
	}
	decode(t, resp, &body)
	assert.Zero(t, body.Total, "sin stock no hay sugerencias")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ingresos y kardex
// ──────────────────────────────────────────────────────────────────────────────

func TestIngresos_CrearCompletadoActivaLotes(t *testing.T) {
	app, st := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/ingresos", fiber.Map{
		"estado":  "COMPLETADO",
		"id_user": user,
		"detalles": []fiber.Map{
			{"id_insumo": azucar, "cantidad": 10, "costo_unitario": 5},
		},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var out dto.ReceiptResponse
	decode(t, resp, &out)
	assert.Equal(t, "COMPLETADO", out.State)
	require.Len(t, out.Lots, 1)
	assert.True(t, st.MaterialStock(azucar).Equal(d(25)))
}

func TestIngresos_SinDetallesResponde400(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/ingresos", fiber.Map{"id_user": user, "detalles": []fiber.Map{}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestIngresos_AnularConsumidoResponde409(t *testing.T) {
	app, _ := buildTestApp(t)
	require.Equal(t, fiber.StatusCreated, execute(t, app, 1).StatusCode)

	resp := doJSON(t, app, http.MethodPost, "/api/ingresos/"+recibo+"/anular", fiber.Map{"id_user": user})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestKardex_LotesConciliacionYMovimientos(t *testing.T) {
	app, _ := buildTestApp(t)

	lots := doJSON(t, app, http.MethodGet, "/api/insumos/"+harina+"/lotes", nil)
	require.Equal(t, fiber.StatusOK, lots.StatusCode)
	var preview dto.LotPreviewResponse
	decode(t, lots, &preview)
	require.Len(t, preview.Lots, 2)
	assert.Equal(t, "A", preview.Lots[0].ID, "orden FEFO")

	require.Equal(t, fiber.StatusCreated, execute(t, app, 1).StatusCode)

	kardex := doJSON(t, app, http.MethodGet, "/api/insumos/"+harina+"/kardex?limit=10", nil)
	require.Equal(t, fiber.StatusOK, kardex.StatusCode)
	var km dto.MaterialKardexResponse
	decode(t, kardex, &km)
	require.Len(t, km.Items, 1)
	assert.Equal(t, "SALIDA", km.Items[0].Direction)

	prod := doJSON(t, app, http.MethodGet, "/api/productos/"+pan+"/kardex", nil)
	require.Equal(t, fiber.StatusOK, prod.StatusCode)

	missing := doJSON(t, app, http.MethodGet, "/api/insumos/"+noExiste+"/conciliacion", nil)
	assert.Equal(t, fiber.StatusNotFound, missing.StatusCode)
}
