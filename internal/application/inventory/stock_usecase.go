package inventory

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/jhoicas/fumimanager/internal/application/dto"
	"github.com/jhoicas/fumimanager/internal/domain/entity"
	"github.com/jhoicas/fumimanager/internal/domain/inventory"
	"github.com/jhoicas/fumimanager/internal/domain/record"
	"github.com/jhoicas/fumimanager/internal/domain/repository"
)

// Limits umbrales de stock bajo y capacidades por ítem.
type Limits struct {
	Thresholds map[entity.ItemKey]int
	Capacities map[entity.ItemKey]int
}

// StockUseCase ingresos, consumos, niveles y alertas del kardex.
type StockUseCase struct {
	ledger   *inventory.Ledger
	limits   Limits
	activity repository.ActivitySink
	log      zerolog.Logger
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(ledger *inventory.Ledger, limits Limits, activity repository.ActivitySink, log zerolog.Logger) *StockUseCase {
	if activity == nil {
		activity = repository.NopActivity{}
	}
	return &StockUseCase{ledger: ledger, limits: limits, activity: activity, log: log}
}

// RecordInward registra un ingreso y actualiza el nivel en el mismo paso.
func (uc *StockUseCase) RecordInward(actor string, in dto.RecordStockRequest) (*dto.StockTransactionResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	tx, err := uc.ledger.RecordInward(in.Branch, entity.ItemKey(in.Item), in.Qty, in.Ref)
	if err != nil {
		return nil, fmt.Errorf("ingreso de stock: %w", err)
	}
	uc.log.Info().Str("branch", tx.Branch).Str("item", string(tx.Item)).Int("qty", tx.Qty).Str("ref", tx.Ref).Msg("ingreso de stock")
	uc.activity.Record("Stock Added", actorAt(actor, tx.Branch), entity.ActivitySuccess)
	return toTransactionResponse(tx), nil
}

// RecordConsumption registra un consumo; falla con ErrInsufficientStock si no alcanza.
func (uc *StockUseCase) RecordConsumption(actor string, in dto.RecordStockRequest) (*dto.StockTransactionResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	tx, err := uc.ledger.RecordConsumption(in.Branch, entity.ItemKey(in.Item), in.Qty, in.Ref)
	if err != nil {
		return nil, fmt.Errorf("consumo de stock: %w", err)
	}
	uc.log.Info().Str("branch", tx.Branch).Str("item", string(tx.Item)).Int("qty", tx.Qty).Msg("consumo de stock")
	uc.activity.Record("Stock Consumed", actorAt(actor, tx.Branch), entity.ActivityInfo)
	return toTransactionResponse(tx), nil
}

// Overview tarjetas por sucursal en orden de alta, con ocupación y marca de stock bajo.
func (uc *StockUseCase) Overview() []dto.BranchStockResponse {
	levels := uc.ledger.Levels()
	out := make([]dto.BranchStockResponse, 0, len(levels))
	for _, b := range uc.ledger.Branches() {
		lv := levels[b]
		items := make([]dto.StockItemResponse, 0, len(entity.ItemKeys))
		for _, k := range entity.ItemKeys {
			th, hasTh := uc.limits.Thresholds[k]
			cp := uc.limits.Capacities[k]
			items = append(items, dto.StockItemResponse{
				Key:       string(k),
				Name:      k.DisplayName(),
				Level:     lv[k],
				Threshold: th,
				Capacity:  cp,
				Percent:   inventory.FillPercent(lv[k], cp),
				Low:       hasTh && lv[k] < th,
			})
		}
		out = append(out, dto.BranchStockResponse{Branch: b, Items: items})
	}
	return out
}

// History transacciones filtradas, la más reciente primero.
func (uc *StockUseCase) History(f dto.StockHistoryFilter) []dto.StockTransactionResponse {
	f.DefaultPage()
	txs := record.Page(uc.ledger.History(inventory.HistoryFilter{
		Branch: f.Branch,
		Item:   entity.ItemKey(f.Item),
		Type:   f.Type,
	}), f.Limit, f.Offset)
	out := make([]dto.StockTransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, *toTransactionResponse(tx))
	}
	return out
}

// LowStockAlerts ítems por debajo de su umbral.
func (uc *StockUseCase) LowStockAlerts() []dto.LowStockAlertResponse {
	alerts := inventory.LowStockAlerts(uc.ledger.Levels(), uc.limits.Thresholds)
	out := make([]dto.LowStockAlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.LowStockAlertResponse{
			Branch:    a.Branch,
			Item:      string(a.Item),
			Level:     a.Level,
			Threshold: a.Threshold,
			Message:   fmt.Sprintf("%s stock low in %s (%d)", a.Item, a.Branch, a.Level),
		})
	}
	return out
}

// Reconcile verifica que cada nivel coincide con la suma de sus transacciones.
func (uc *StockUseCase) Reconcile() dto.ReconcileResponse {
	ds := uc.ledger.Reconcile()
	resp := dto.ReconcileResponse{Balanced: len(ds) == 0}
	for _, d := range ds {
		resp.Discrepancies = append(resp.Discrepancies, dto.StockDiscrepancyDTO{
			Branch: d.Branch, Item: string(d.Item), Level: d.Level, Sum: d.Sum,
		})
	}
	if !resp.Balanced {
		uc.log.Error().Int("discrepancies", len(ds)).Msg("kardex descuadrado")
	}
	return resp
}

func actorAt(actor, branch string) string {
	if actor == "" {
		return branch
	}
	return actor + " (" + branch + ")"
}

func toTransactionResponse(tx entity.StockTransaction) *dto.StockTransactionResponse {
	return &dto.StockTransactionResponse{
		ID:      strconv.FormatInt(tx.ID, 10),
		Date:    tx.Date.Format(dto.DateLayout),
		Branch:  tx.Branch,
		Type:    tx.Type,
		ItemKey: string(tx.Item),
		Item:    tx.Item.DisplayName(),
		Qty:     tx.Qty,
		Ref:     tx.Ref,
	}
}
