package inventory

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/fumimanager/internal/domain"
	"github.com/jhoicas/fumimanager/internal/domain/entity"
)

// DefaultReference referencia usada cuando el ingreso no trae número de lote.
const DefaultReference = "Manual Adjustment"

// Ledger kardex de insumos por sucursal. El nivel de cada (sucursal, ítem) solo cambia
// junto con la transacción que lo explica, dentro de la misma sección crítica.
type Ledger struct {
	mu       sync.RWMutex
	levels   map[string]entity.StockLevel
	branches []string
	txs      []entity.StockTransaction // más reciente primero
	nextID   func() int64
	now      func() time.Time
}

// NewLedger crea un kardex vacío. nextID genera IDs únicos de transacción.
func NewLedger(nextID func() int64, now func() time.Time) *Ledger {
	if now == nil {
		now = time.Now
	}
	return &Ledger{
		levels: make(map[string]entity.StockLevel),
		nextID: nextID,
		now:    now,
	}
}

// RecordInward registra un ingreso. Una sucursal desconocida se da de alta con el primer ingreso.
func (l *Ledger) RecordInward(branch string, item entity.ItemKey, qty int, ref string) (entity.StockTransaction, error) {
	if qty <= 0 {
		return entity.StockTransaction{}, fieldError("qty", "debe ser mayor que cero")
	}
	return l.apply(entity.StockTransaction{
		Date: l.now(), Branch: branch, Type: entity.StockInward, Item: item, Qty: qty, Ref: ref,
	})
}

// RecordConsumption registra un consumo (delta negativo). Falla si el nivel no alcanza.
func (l *Ledger) RecordConsumption(branch string, item entity.ItemKey, qty int, ref string) (entity.StockTransaction, error) {
	if qty <= 0 {
		return entity.StockTransaction{}, fieldError("qty", "debe ser mayor que cero")
	}
	return l.apply(entity.StockTransaction{
		Date: l.now(), Branch: branch, Type: entity.StockConsumption, Item: item, Qty: -qty, Ref: ref,
	})
}

// Restore reaplica transacciones históricas en orden cronológico (carga inicial).
// Conserva fecha y referencia; el ID se regenera.
func (l *Ledger) Restore(txs []entity.StockTransaction) error {
	for _, tx := range txs {
		if _, err := l.apply(tx); err != nil {
			return fmt.Errorf("restore %s/%s: %w", tx.Branch, tx.Item, err)
		}
	}
	return nil
}

func (l *Ledger) apply(tx entity.StockTransaction) (entity.StockTransaction, error) {
	tx.Branch = strings.TrimSpace(tx.Branch)
	if tx.Branch == "" {
		return entity.StockTransaction{}, fieldError("branch", "requerido")
	}
	if !tx.Item.Valid() {
		return entity.StockTransaction{}, fieldError("item", "ítem desconocido")
	}
	if strings.TrimSpace(tx.Ref) == "" {
		tx.Ref = DefaultReference
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	level, ok := l.levels[tx.Branch]
	if tx.Qty < 0 {
		if !ok || level[tx.Item]+tx.Qty < 0 {
			return entity.StockTransaction{}, fmt.Errorf("%s %s: %w", tx.Branch, tx.Item, domain.ErrInsufficientStock)
		}
	}
	if !ok {
		level = make(entity.StockLevel, len(entity.ItemKeys))
		for _, k := range entity.ItemKeys {
			level[k] = 0
		}
		l.levels[tx.Branch] = level
		l.branches = append(l.branches, tx.Branch)
	}

	tx.ID = l.nextID()
	level[tx.Item] += tx.Qty
	l.txs = append([]entity.StockTransaction{tx}, l.txs...)
	return tx, nil
}

// Branches sucursales en orden de alta.
func (l *Ledger) Branches() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, len(l.branches))
	copy(out, l.branches)
	return out
}

// Level nivel actual; ok es falso si la sucursal no existe.
func (l *Ledger) Level(branch string) (entity.StockLevel, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	lv, ok := l.levels[branch]
	if !ok {
		return nil, false
	}
	return copyLevel(lv), true
}

// Levels copia de todos los niveles.
func (l *Ledger) Levels() map[string]entity.StockLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[string]entity.StockLevel, len(l.levels))
	for b, lv := range l.levels {
		out[b] = copyLevel(lv)
	}
	return out
}

// HistoryFilter filtros del historial; campos vacíos no filtran.
type HistoryFilter struct {
	Branch string
	Item   entity.ItemKey
	Type   string
}

// History transacciones, la más reciente primero.
func (l *Ledger) History(f HistoryFilter) []entity.StockTransaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]entity.StockTransaction, 0, len(l.txs))
	for _, tx := range l.txs {
		if f.Branch != "" && tx.Branch != f.Branch {
			continue
		}
		if f.Item != "" && tx.Item != f.Item {
			continue
		}
		if f.Type != "" && tx.Type != f.Type {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// Discrepancy diferencia entre el nivel y la suma de deltas del kardex.
type Discrepancy struct {
	Branch string
	Item   entity.ItemKey
	Level  int
	Sum    int
}

// Reconcile compara cada nivel con la suma de sus transacciones. Vacío significa cuadrado.
func (l *Ledger) Reconcile() []Discrepancy {
	l.mu.RLock()
	defer l.mu.RUnlock()

	sums := make(map[string]map[entity.ItemKey]int, len(l.levels))
	for _, tx := range l.txs {
		if sums[tx.Branch] == nil {
			sums[tx.Branch] = make(map[entity.ItemKey]int)
		}
		sums[tx.Branch][tx.Item] += tx.Qty
	}

	var out []Discrepancy
	for _, b := range l.branches {
		for _, k := range entity.ItemKeys {
			if lv, s := l.levels[b][k], sums[b][k]; lv != s {
				out = append(out, Discrepancy{Branch: b, Item: k, Level: lv, Sum: s})
			}
		}
	}
	return out
}

// Alert ítem por debajo de su umbral en una sucursal.
type Alert struct {
	Branch    string
	Item      entity.ItemKey
	Level     int
	Threshold int
}

// LowStockAlerts marca nivel < umbral. Los umbrales son por ítem, no por sucursal;
// un ítem sin umbral nunca alerta. Sucursales ordenadas por nombre, ítems en orden fijo.
func LowStockAlerts(levels map[string]entity.StockLevel, thresholds map[entity.ItemKey]int) []Alert {
	branches := make([]string, 0, len(levels))
	for b := range levels {
		branches = append(branches, b)
	}
	sort.Strings(branches)

	var out []Alert
	for _, b := range branches {
		for _, k := range entity.ItemKeys {
			th, ok := thresholds[k]
			if !ok {
				continue
			}
			if lv := levels[b][k]; lv < th {
				out = append(out, Alert{Branch: b, Item: k, Level: lv, Threshold: th})
			}
		}
	}
	return out
}

// FillPercent porcentaje de ocupación (0-100) respecto de la capacidad.
func FillPercent(level, capacity int) int {
	if capacity <= 0 {
		return 0
	}
	p := level * 100 / capacity
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

func copyLevel(lv entity.StockLevel) entity.StockLevel {
	out := make(entity.StockLevel, len(lv))
	for k, v := range lv {
		out[k] = v
	}
	return out
}

func fieldError(field, msg string) error {
	ve := domain.NewValidationError()
	ve.Add(field, msg)
	return ve
}
