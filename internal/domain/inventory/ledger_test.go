package inventory_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fumimanager/internal/domain"
	"github.com/jhoicas/fumimanager/internal/domain/entity"
	"github.com/jhoicas/fumimanager/internal/domain/inventory"
)

var fixedNow = time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)

func newLedger() *inventory.Ledger {
	var n int64
	return inventory.NewLedger(func() int64 { n++; return n }, func() time.Time { return fixedNow })
}

func opening(t *testing.T, l *inventory.Ledger) {
	t.Helper()
	day := time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)
	require.NoError(t, l.Restore([]entity.StockTransaction{
		{Date: day, Branch: "Gujarat", Type: entity.StockInward, Item: entity.ItemMB, Qty: 450, Ref: "Opening Balance"},
		{Date: day, Branch: "Gujarat", Type: entity.StockInward, Item: entity.ItemALP, Qty: 120, Ref: "Opening Balance"},
		{Date: day, Branch: "Punjab", Type: entity.StockInward, Item: entity.ItemALP, Qty: 50, Ref: "Opening Balance"},
	}))
}

func TestLedger_RecordInward_Gujarat(t *testing.T) {
	l := newLedger()
	opening(t, l)
	before := len(l.History(inventory.HistoryFilter{}))

	tx, err := l.RecordInward("Gujarat", entity.ItemMB, 200, "PO-1")
	require.NoError(t, err)

	lv, ok := l.Level("Gujarat")
	require.True(t, ok)
	assert.Equal(t, 650, lv[entity.ItemMB])

	hist := l.History(inventory.HistoryFilter{})
	assert.Len(t, hist, before+1, "exactamente una transacción nueva")
	assert.Equal(t, tx, hist[0])
	assert.Equal(t, 200, tx.Qty)
	assert.Equal(t, entity.StockInward, tx.Type)
	assert.Equal(t, "PO-1", tx.Ref)
	assert.Equal(t, fixedNow, tx.Date)
}

func TestLedger_RecordInward_Validaciones(t *testing.T) {
	l := newLedger()

	_, err := l.RecordInward("Gujarat", entity.ItemMB, 0, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = l.RecordInward("", entity.ItemMB, 5, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = l.RecordInward("Gujarat", entity.ItemKey("XYZ"), 5, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, l.History(inventory.HistoryFilter{}), "ningún fallo deja transacciones")
	assert.Empty(t, l.Branches())
}

func TestLedger_SucursalNuevaYReferenciaPorDefecto(t *testing.T) {
	l := newLedger()
	tx, err := l.RecordInward("Mumbai", entity.ItemCertificates, 10, "  ")
	require.NoError(t, err)
	assert.Equal(t, inventory.DefaultReference, tx.Ref)

	lv, ok := l.Level("Mumbai")
	require.True(t, ok)
	assert.Equal(t, entity.StockLevel{entity.ItemMB: 0, entity.ItemALP: 0, entity.ItemCertificates: 10}, lv)
}

func TestLedger_Consumo(t *testing.T) {
	l := newLedger()
	opening(t, l)

	tx, err := l.RecordConsumption("Punjab", entity.ItemALP, 15, "Cert #043 A")
	require.NoError(t, err)
	assert.Equal(t, -15, tx.Qty)
	lv, _ := l.Level("Punjab")
	assert.Equal(t, 35, lv[entity.ItemALP])

	_, err = l.RecordConsumption("Punjab", entity.ItemALP, 36, "")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	lv, _ = l.Level("Punjab")
	assert.Equal(t, 35, lv[entity.ItemALP], "el consumo rechazado no cambia el nivel")

	_, err = l.RecordConsumption("Delhi", entity.ItemALP, 1, "")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestLedger_ReconciliaTrasSecuenciaAleatoria(t *testing.T) {
	l := newLedger()
	rnd := rand.New(rand.NewSource(7))
	branches := []string{"Gujarat", "Punjab", "Mumbai"}

	for i := 0; i < 300; i++ {
		b := branches[rnd.Intn(len(branches))]
		k := entity.ItemKeys[rnd.Intn(len(entity.ItemKeys))]
		if rnd.Intn(3) == 0 {
			_, _ = l.RecordConsumption(b, k, rnd.Intn(50)+1, "")
			continue
		}
		_, err := l.RecordInward(b, k, rnd.Intn(100)+1, "")
		require.NoError(t, err)
	}

	assert.Empty(t, l.Reconcile())

	for b, lv := range l.Levels() {
		for _, k := range entity.ItemKeys {
			sum := 0
			for _, tx := range l.History(inventory.HistoryFilter{Branch: b, Item: k}) {
				sum += tx.Qty
			}
			assert.Equal(t, lv[k], sum, "%s/%s", b, k)
		}
	}
}

func TestLedger_HistoryFiltros(t *testing.T) {
	l := newLedger()
	opening(t, l)
	_, err := l.RecordConsumption("Gujarat", entity.ItemMB, 5, "")
	require.NoError(t, err)

	got := l.History(inventory.HistoryFilter{Branch: "Gujarat", Type: entity.StockConsumption})
	require.Len(t, got, 1)
	assert.Equal(t, entity.ItemMB, got[0].Item)

	assert.Len(t, l.History(inventory.HistoryFilter{Item: entity.ItemALP}), 2)
}

func TestLowStockAlerts(t *testing.T) {
	levels := map[string]entity.StockLevel{
		"Punjab":  {entity.ItemMB: 300, entity.ItemALP: 50, entity.ItemCertificates: 200},
		"Gujarat": {entity.ItemMB: 99, entity.ItemALP: 120, entity.ItemCertificates: 100},
	}
	th := map[entity.ItemKey]int{entity.ItemMB: 100, entity.ItemALP: 60, entity.ItemCertificates: 100}

	got := inventory.LowStockAlerts(levels, th)
	require.Len(t, got, 2)
	assert.Equal(t, inventory.Alert{Branch: "Gujarat", Item: entity.ItemMB, Level: 99, Threshold: 100}, got[0])
	assert.Equal(t, inventory.Alert{Branch: "Punjab", Item: entity.ItemALP, Level: 50, Threshold: 60}, got[1])

	assert.Empty(t, inventory.LowStockAlerts(levels, map[entity.ItemKey]int{}))
}

func TestFillPercent(t *testing.T) {
	assert.Equal(t, 45, inventory.FillPercent(450, 1000))
	assert.Equal(t, 100, inventory.FillPercent(5000, 1000))
	assert.Equal(t, 0, inventory.FillPercent(10, 0))
}
