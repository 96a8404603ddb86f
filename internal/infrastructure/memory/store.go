// Package memory implementa los puertos de persistencia en memoria con transacciones
// por snapshot. Lo usan las pruebas de casos de uso y handlers.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/panaderia-api/internal/application/inventory"
	"github.com/jhoicas/panaderia-api/internal/domain/entity"
)

var _ inventory.TxRunner = (*Store)(nil)

type state struct {
	receipts    map[string]entity.GoodsReceipt
	lots        map[string]entity.Lot
	lotSeq      int64
	materials   map[string]entity.RawMaterial
	matMovs     []entity.MaterialMovement
	prodMovs    []entity.ProductMovement
	sequences   map[string]int64
	recipes     map[string]entity.Recipe
	productions map[string]entity.ProductionRun
	goods       map[string]entity.FinishedGood
	sales       map[string]entity.Sale
	saleOrder   []string
}

func newState() state {
	return state{
		receipts:    make(map[string]entity.GoodsReceipt),
		lots:        make(map[string]entity.Lot),
		materials:   make(map[string]entity.RawMaterial),
		sequences:   make(map[string]int64),
		recipes:     make(map[string]entity.Recipe),
		productions: make(map[string]entity.ProductionRun),
		goods:       make(map[string]entity.FinishedGood),
		sales:       make(map[string]entity.Sale),
	}
}

func (s state) clone() state {
	c := newState()
	for k, v := range s.receipts {
		c.receipts[k] = v
	}
	for k, v := range s.lots {
		c.lots[k] = v
	}
	c.lotSeq = s.lotSeq
	for k, v := range s.materials {
		c.materials[k] = v
	}
	c.matMovs = append([]entity.MaterialMovement(nil), s.matMovs...)
	c.prodMovs = append([]entity.ProductMovement(nil), s.prodMovs...)
	for k, v := range s.sequences {
		c.sequences[k] = v
	}
	for k, v := range s.recipes {
		v.Lines = append([]entity.RecipeLine(nil), v.Lines...)
		c.recipes[k] = v
	}
	for k, v := range s.productions {
		c.productions[k] = v
	}
	for k, v := range s.goods {
		c.goods[k] = v
	}
	for k, v := range s.sales {
		v.Lines = append([]entity.SaleLine(nil), v.Lines...)
		c.sales[k] = v
	}
	c.saleOrder = append([]string(nil), s.saleOrder...)
	return c
}

// Store base de datos en memoria. Run serializa las transacciones y restaura el snapshot
// previo cuando fn devuelve error.
type Store struct {
	txMu  sync.Mutex
	mu    sync.Mutex
	st    state
	fails map[string]failure
	calls map[string]int
}

type failure struct {
	nth int
	err error
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{st: newState(), fails: make(map[string]failure), calls: make(map[string]int)}
}

// FailOn hace que la n-ésima llamada (desde 1) a op devuelva err.
// op: "lots.UpdateRemaining", "movements.CreateMaterial", "movements.CreateProduct",
// "goods.UpdateStock", "goods.UpdateStockAndCost", "productions.Create", "sales.CreateLine", ...
func (s *Store) FailOn(op string, nth int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fails[op] = failure{nth: nth, err: err}
	s.calls[op] = 0
}

// hit cuenta la llamada y devuelve el error inyectado si corresponde. Requiere s.mu tomado.
func (s *Store) hit(op string) error {
	s.calls[op]++
	if f, ok := s.fails[op]; ok && s.calls[op] == f.nth {
		if f.err != nil {
			return f.err
		}
		return fmt.Errorf("%s: falla inyectada", op)
	}
	return nil
}

// Run implementa inventory.TxRunner.
func (s *Store) Run(ctx context.Context, fn func(ctx context.Context, r inventory.Repos) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.st.clone()
	s.mu.Unlock()

	if err := fn(ctx, s.Repos()); err != nil {
		s.mu.Lock()
		s.st = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

// Repos devuelve los adaptadores de todos los puertos sobre este store.
func (s *Store) Repos() inventory.Repos {
	return inventory.Repos{
		Lots:        &lotRepo{s},
		Receipts:    &receiptRepo{s},
		Materials:   &materialRepo{s},
		Movements:   &movementRepo{s},
		Sequences:   &sequenceRepo{s},
		Recipes:     &recipeRepo{s},
		Productions: &productionRepo{s},
		Goods:       &goodRepo{s},
		Sales:       &saleRepo{s},
	}
}

// ── siembra y lectura directa (pruebas) ──────────────────────────────────────

// AddMaterial siembra un insumo.
func (s *Store) AddMaterial(m entity.RawMaterial) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.materials[m.ID] = m
}

// AddReceipt siembra un ingreso.
func (s *Store) AddReceipt(r entity.GoodsReceipt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.receipts[r.ID] = r
}

// AddLot siembra un lote.
func (s *Store) AddLot(l entity.Lot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l.Seq == 0 {
		s.st.lotSeq++
		l.Seq = s.st.lotSeq
	}
	s.st.lots[l.ID] = l
}

// AddRecipe siembra una receta con sus líneas.
func (s *Store) AddRecipe(r entity.Recipe) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.Lines = append([]entity.RecipeLine(nil), r.Lines...)
	s.st.recipes[r.ID] = r
}

// AddGood siembra un producto terminado.
func (s *Store) AddGood(g entity.FinishedGood) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.goods[g.ID] = g
}

// AddProduction siembra una cabecera de producción.
func (s *Store) AddProduction(p entity.ProductionRun) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.productions[p.ID] = p
}

// Lot lectura directa de un lote.
func (s *Store) Lot(id string) entity.Lot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.lots[id]
}

// Good lectura directa de un producto terminado.
func (s *Store) Good(id string) entity.FinishedGood {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.goods[id]
}

// MaterialMovements copia del kardex de insumos en orden de inserción.
func (s *Store) MaterialMovements() []entity.MaterialMovement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.MaterialMovement(nil), s.st.matMovs...)
}

// ProductMovements copia del kardex de productos en orden de inserción.
func (s *Store) ProductMovements() []entity.ProductMovement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.ProductMovement(nil), s.st.prodMovs...)
}

// ProductionCount cantidad de cabeceras de producción.
func (s *Store) ProductionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.productions)
}

// SaleCount cantidad de ventas.
func (s *Store) SaleCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.sales)
}

// MaterialStock stock derivado de un insumo.
func (s *Store) MaterialStock(id string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, l := range s.st.lots {
		if l.RawMaterialID == id && s.activeLocked(l) {
			total = total.Add(l.QuantityRemaining)
		}
	}
	return total
}

// activeLocked lote con restante > 0 cuyo ingreso no está anulado. Requiere s.mu tomado.
func (s *Store) activeLocked(l entity.Lot) bool {
	if !l.QuantityRemaining.GreaterThan(decimal.Zero) {
		return false
	}
	if rc, ok := s.st.receipts[l.ReceiptID]; ok && rc.State == entity.ReceiptVoided {
		return false
	}
	return true
}
