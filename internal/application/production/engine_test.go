package production_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panaderia-api/internal/application/dto"
	"github.com/jhoicas/panaderia-api/internal/application/inventory"
	"github.com/jhoicas/panaderia-api/internal/application/production"
	"github.com/jhoicas/panaderia-api/internal/domain"
	"github.com/jhoicas/panaderia-api/internal/domain/entity"
	"github.com/jhoicas/panaderia-api/internal/infrastructure/memory"
	"github.com/jhoicas/panaderia-api/pkg/logger"
)

const (
	harina   = "mat-harina"
	azucar   = "mat-azucar"
	semillas = "mat-semillas"
	pan      = "prod-pan"
	receta   = "rec-pan"
	user     = "user-1"
)

var t0 = time.Date(2026, 10, 1, 6, 0, 0, 0, time.UTC)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func exp(days int) *time.Time {
	v := t0.AddDate(0, 0, days)
	return &v
}

// fixture: harina en lotes A (50, vence día 10, costo 2) y B (30, vence día 90, costo 3);
// azúcar 15 sin vencimiento (costo 4). Receta: 6 harina + 1 azúcar por batch (+ semillas opcional),
// rinde 20 panes por batch.
func fixture(t *testing.T) (*memory.Store, *production.Engine) {
	t.Helper()
	st := memory.NewStore()
	st.AddMaterial(entity.RawMaterial{ID: harina, Name: "Harina", Unit: "kg"})
	st.AddMaterial(entity.RawMaterial{ID: azucar, Name: "Azúcar", Unit: "kg"})
	st.AddMaterial(entity.RawMaterial{ID: semillas, Name: "Semillas", Unit: "kg"})
	st.AddReceipt(entity.GoodsReceipt{ID: "R1", State: entity.ReceiptCompleted})
	st.AddLot(entity.Lot{ID: "A", ReceiptID: "R1", RawMaterialID: harina, QuantityReceived: d(50), QuantityRemaining: d(50), ExpirationDate: exp(10), UnitCost: d(2), CreatedAt: t0})
	st.AddLot(entity.Lot{ID: "B", ReceiptID: "R1", RawMaterialID: harina, QuantityReceived: d(30), QuantityRemaining: d(30), ExpirationDate: exp(90), UnitCost: d(3), CreatedAt: t0})
	st.AddLot(entity.Lot{ID: "Z", ReceiptID: "R1", RawMaterialID: azucar, QuantityReceived: d(15), QuantityRemaining: d(15), UnitCost: d(4), CreatedAt: t0})
	st.AddGood(entity.FinishedGood{ID: pan, Name: "Pan francés", Price: d(500), UnitCost: d(10), StockActual: d(0)})
	st.AddRecipe(entity.Recipe{
		ID: receta, ProductID: pan, Name: "Pan francés", YieldPerBatch: d(20),
		Lines: []entity.RecipeLine{
			{ID: "l1", RecipeID: receta, RawMaterialID: harina, QuantityPerUnit: d(6)},
			{ID: "l2", RecipeID: receta, RawMaterialID: azucar, QuantityPerUnit: d(1)},
			{ID: "l3", RecipeID: receta, RawMaterialID: semillas, QuantityPerUnit: d(2), Optional: true},
		},
	})
	ledger := inventory.NewMovementLedger()
	engine := production.NewEngine(st.Repos(), st, ledger, inventory.NewLotRegistry(ledger), nil, logger.Nop())
	return st, engine
}

func TestValidateStock_ExcluyeOpcionalesYNoModifica(t *testing.T) {
	st, engine := fixture(t)
	res, err := engine.ValidateStock(context.Background(), receta, d(10))
	require.NoError(t, err)
	assert.True(t, res.Sufficient)
	require.Len(t, res.Ingredients, 2, "las líneas opcionales no se validan")
	assert.Equal(t, harina, res.Ingredients[0].RawMaterialID)
	assert.True(t, res.Ingredients[0].Required.Equal(d(60)))
	assert.True(t, res.Ingredients[0].Available.Equal(d(80)))
	assert.True(t, st.MaterialStock(harina).Equal(d(80)))
	assert.Empty(t, st.MaterialMovements())
}

func TestValidateStock_Errores(t *testing.T) {
	_, engine := fixture(t)
	_, err := engine.ValidateStock(context.Background(), "no-existe", d(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = engine.ValidateStock(context.Background(), receta, d(0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = engine.ValidateStock(context.Background(), receta, d(-2))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExecute_DescuentaFEFOYAcreditaProducto(t *testing.T) {
	st, engine := fixture(t)
	res, err := engine.Execute(context.Background(), production.ExecuteInput{RecipeID: receta, BatchSize: d(10), UserID: user})
	require.NoError(t, err)

	assert.Regexp(t, `^PROD-\d{6}-1$`, res.Number)
	assert.True(t, res.Produced.Equal(d(200)))
	// 50×2 + 10×3 + 10×4 = 170
	assert.True(t, res.TotalCost.Equal(d(170)), res.TotalCost.String())

	assert.True(t, st.Lot("A").QuantityRemaining.IsZero())
	assert.True(t, st.Lot("B").QuantityRemaining.Equal(d(20)))
	assert.True(t, st.Lot("Z").QuantityRemaining.Equal(d(5)))

	movs := st.MaterialMovements()
	require.Len(t, movs, 3, "una SALIDA por lote tocado")
	assert.Equal(t, "A", movs[0].LotID)
	assert.True(t, movs[0].QuantityBefore.Equal(d(50)))
	assert.True(t, movs[0].QuantityAfter.IsZero())
	assert.Equal(t, "B", movs[1].LotID)
	assert.True(t, movs[1].Quantity.Equal(d(10)))
	for _, m := range movs {
		assert.Equal(t, entity.DirectionOut, m.Direction)
		assert.Equal(t, res.ID, m.OriginID)
	}

	good := st.Good(pan)
	assert.True(t, good.StockActual.Equal(d(200)))
	assert.True(t, good.UnitCost.Equal(decimal.RequireFromString("0.85")), good.UnitCost.String())

	credits := st.ProductMovements()
	require.Len(t, credits, 1)
	assert.Equal(t, entity.DirectionIn, credits[0].Direction)
	assert.True(t, credits[0].QuantityAfter.Equal(d(200)))
	assert.Regexp(t, `^MPT-\d{6}-00001$`, credits[0].Number)
}

func TestExecute_StockInsuficienteSinEscrituras(t *testing.T) {
	st, engine := fixture(t)
	_, err := engine.Execute(context.Background(), production.ExecuteInput{RecipeID: receta, BatchSize: d(20), UserID: user})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insuf *domain.InsufficientStockError
	require.True(t, errors.As(err, &insuf))
	require.Len(t, insuf.Items, 2, "reporta todos los insumos deficientes")
	assert.Equal(t, harina, insuf.Items[0].ID)
	assert.True(t, insuf.Items[0].Required.Equal(d(120)))
	assert.True(t, insuf.Items[0].Available.Equal(d(80)))

	assert.Equal(t, 0, st.ProductionCount())
	assert.Empty(t, st.MaterialMovements())
	assert.True(t, st.MaterialStock(harina).Equal(d(80)))
}

func TestExecute_FallaEnSegundoIngredienteRevierteTodo(t *testing.T) {
	st, engine := fixture(t)
	// Tercera actualización de lote = lote de azúcar (A y B son de harina).
	st.FailOn("lots.UpdateRemaining", 3, errors.New("conexión perdida"))

	_, err := engine.Execute(context.Background(), production.ExecuteInput{RecipeID: receta, BatchSize: d(10), UserID: user})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExecutionFailed)
	var execErr *domain.ExecutionError
	require.True(t, errors.As(err, &execErr))
	assert.Contains(t, execErr.Err.Error(), "conexión perdida")

	assert.True(t, st.Lot("A").QuantityRemaining.Equal(d(50)))
	assert.True(t, st.Lot("B").QuantityRemaining.Equal(d(30)))
	assert.True(t, st.Lot("Z").QuantityRemaining.Equal(d(15)))
	assert.Empty(t, st.MaterialMovements())
	assert.Empty(t, st.ProductMovements())
	assert.Equal(t, 0, st.ProductionCount())
	assert.True(t, st.Good(pan).StockActual.IsZero())
}

func TestExecute_FallaAlAcreditarProductoRevierteTodo(t *testing.T) {
	st, engine := fixture(t)
	st.FailOn("movements.CreateProduct", 1, nil)

	_, err := engine.Execute(context.Background(), production.ExecuteInput{RecipeID: receta, BatchSize: d(1), UserID: user})
	assert.ErrorIs(t, err, domain.ErrExecutionFailed)
	assert.True(t, st.MaterialStock(harina).Equal(d(80)))
	assert.True(t, st.Good(pan).StockActual.IsZero())
}

func TestExecute_CostoPromedioPonderado(t *testing.T) {
	st, engine := fixture(t)
	ctx := context.Background()
	// Primer batch: 6 harina de A (12) + 1 azúcar (4) = 16 / 20 panes = 0.8
	_, err := engine.Execute(ctx, production.ExecuteInput{RecipeID: receta, BatchSize: d(1), UserID: user})
	require.NoError(t, err)
	assert.True(t, st.Good(pan).UnitCost.Equal(decimal.RequireFromString("0.8")), st.Good(pan).UnitCost.String())

	_, err = engine.Execute(ctx, production.ExecuteInput{RecipeID: receta, BatchSize: d(1), UserID: user})
	require.NoError(t, err)
	assert.True(t, st.Good(pan).StockActual.Equal(d(40)))
	assert.True(t, st.Good(pan).UnitCost.Equal(decimal.RequireFromString("0.8")))
	assert.Len(t, st.ProductMovements(), 2)
}

func TestTraceYListado(t *testing.T) {
	_, engine := fixture(t)
	ctx := context.Background()
	res, err := engine.Execute(ctx, production.ExecuteInput{RecipeID: receta, BatchSize: d(10), UserID: user, Notes: "turno mañana"})
	require.NoError(t, err)

	trace, err := engine.Trace(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, res.Number, trace.Number)
	require.Len(t, trace.Consumptions, 3)
	assert.Equal(t, "Harina", trace.Consumptions[0].MaterialName)
	require.NotNil(t, trace.Credit)
	assert.True(t, trace.Credit.Quantity.Equal(d(200)))

	_, err = engine.Trace(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := engine.ListRuns(ctx, nil, nil, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, res.ID, list.Items[0].ID)
}

func addMicroRecipe(st *memory.Store, id string, perUnit string) {
	st.AddRecipe(entity.Recipe{
		ID: id, ProductID: pan, Name: "Masa madre", YieldPerBatch: d(1),
		Lines: []entity.RecipeLine{
			{ID: id + "-l1", RecipeID: id, RawMaterialID: harina, QuantityPerUnit: decimal.RequireFromString(perUnit)},
		},
	})
}

// 0.0005 × 0.5 = 0.00025 no cabe en la columna; se descuenta 0.0003 y el kardex
// registra exactamente lo que bajó el lote.
func TestExecute_CantidadesEnEscalaDeAlmacenamiento(t *testing.T) {
	st, engine := fixture(t)
	addMicroRecipe(st, "rec-micro", "0.0005")

	res, err := engine.Execute(context.Background(), production.ExecuteInput{
		RecipeID: "rec-micro", BatchSize: decimal.RequireFromString("0.5"), UserID: user,
	})
	require.NoError(t, err)

	lotA := st.Lot("A")
	assert.Equal(t, "49.9997", lotA.QuantityRemaining.String())

	movs := st.MaterialMovements()
	require.Len(t, movs, 1)
	assert.Equal(t, "0.0003", movs[0].Quantity.String())
	assert.True(t, movs[0].QuantityBefore.Sub(movs[0].Quantity).Equal(lotA.QuantityRemaining))
	assert.True(t, movs[0].QuantityAfter.Equal(lotA.QuantityRemaining))

	for _, v := range []decimal.Decimal{movs[0].Quantity, movs[0].QuantityAfter, res.Produced, res.TotalCost} {
		assert.LessOrEqual(t, -v.Exponent(), int32(4), v.String())
	}
}

func TestExecute_RechazaCantidadesFueraDeEscala(t *testing.T) {
	st, engine := fixture(t)
	addMicroRecipe(st, "rec-micro", "0.0001")
	ctx := context.Background()

	_, err := engine.Execute(ctx, production.ExecuteInput{RecipeID: receta, BatchSize: decimal.RequireFromString("1.00001"), UserID: user})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "batch con más de 4 decimales")

	// 0.0001 × 0.4 = 0.00004 redondea a cero.
	_, err = engine.Execute(ctx, production.ExecuteInput{RecipeID: "rec-micro", BatchSize: decimal.RequireFromString("0.4"), UserID: user})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = engine.ValidateStock(ctx, receta, decimal.RequireFromString("0.00001"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Zero(t, st.ProductionCount())
	assert.Empty(t, st.MaterialMovements())
}
