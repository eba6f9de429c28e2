package inventory_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/jhoicas/fumimanager/internal/application/inventory"
	"github.com/jhoicas/fumimanager/internal/application/dto"
	"github.com/jhoicas/fumimanager/internal/domain"
	"github.com/jhoicas/fumimanager/internal/domain/entity"
	"github.com/jhoicas/fumimanager/internal/domain/inventory"
	"github.com/jhoicas/fumimanager/internal/infrastructure/memory"
)

func newStockUseCase(t *testing.T) *appinventory.StockUseCase {
	t.Helper()
	var n int64
	ledger := inventory.NewLedger(func() int64 { n++; return n }, func() time.Time {
		return time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	})
	require.NoError(t, ledger.Restore(memory.SeedStock()))
	return appinventory.NewStockUseCase(ledger, appinventory.Limits{
		Thresholds: map[entity.ItemKey]int{entity.ItemMB: 100, entity.ItemALP: 60, entity.ItemCertificates: 100},
		Capacities: map[entity.ItemKey]int{entity.ItemMB: 1000, entity.ItemALP: 500, entity.ItemCertificates: 2000},
	}, nil, zerolog.Nop())
}

func TestStock_RecordInward(t *testing.T) {
	uc := newStockUseCase(t)

	tx, err := uc.RecordInward("Rajeev", dto.RecordStockRequest{Branch: "Gujarat", Item: "MB", Qty: 200, Ref: "PO-1"})
	require.NoError(t, err)
	assert.Equal(t, 200, tx.Qty)
	assert.Equal(t, "Methyl Bromide", tx.Item)
	assert.Equal(t, "2025-09-10", tx.Date)

	ov := uc.Overview()
	require.Equal(t, "Gujarat", ov[0].Branch)
	assert.Equal(t, 650, ov[0].Items[0].Level)
	assert.Equal(t, 65, ov[0].Items[0].Percent)

	hist := uc.History(dto.StockHistoryFilter{})
	assert.Equal(t, tx.ID, hist[0].ID)
	assert.True(t, uc.Reconcile().Balanced)
}

func TestStock_ValidacionNoRegistra(t *testing.T) {
	uc := newStockUseCase(t)
	before := len(uc.History(dto.StockHistoryFilter{PageRequest: dto.PageRequest{Limit: 100}}))

	_, err := uc.RecordInward("", dto.RecordStockRequest{Branch: "Gujarat", Item: "HT", Qty: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.RecordInward("", dto.RecordStockRequest{Branch: "Gujarat", Item: "MB", Qty: -5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.RecordConsumption("", dto.RecordStockRequest{Branch: "Punjab", Item: "ALP", Qty: 51})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Len(t, uc.History(dto.StockHistoryFilter{PageRequest: dto.PageRequest{Limit: 100}}), before)
}

func TestStock_AlertasYOverview(t *testing.T) {
	uc := newStockUseCase(t)

	alerts := uc.LowStockAlerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, "Punjab", alerts[0].Branch)
	assert.Equal(t, "ALP", alerts[0].Item)
	assert.Equal(t, "ALP stock low in Punjab (50)", alerts[0].Message)

	ov := uc.Overview()
	require.Len(t, ov, 2)
	assert.True(t, ov[1].Items[1].Low)
	assert.False(t, ov[0].Items[1].Low)

	_, err := uc.RecordInward("", dto.RecordStockRequest{Branch: "Punjab", Item: "ALP", Qty: 10})
	require.NoError(t, err)
	assert.Empty(t, uc.LowStockAlerts(), "60 no es menor que el umbral 60")
}

func TestStock_HistoryFiltro(t *testing.T) {
	uc := newStockUseCase(t)
	got := uc.History(dto.StockHistoryFilter{Type: entity.StockConsumption})
	require.Len(t, got, 2)
	assert.Equal(t, "Cert #095 A", got[0].Ref)
	assert.Equal(t, -15, got[1].Qty)
}
