package dto

// RecordStockRequest ingreso o consumo de un insumo. Ref vacío se registra como "Manual Adjustment".
type RecordStockRequest struct {
	Branch string `json:"branch" validate:"required,max=100"`
	Item   string `json:"item" validate:"required,oneof=MB ALP Certificates"`
	Qty    int    `json:"qty" validate:"gt=0"`
	Ref    string `json:"ref" validate:"max=100"`
}

// StockHistoryFilter filtros del historial.
type StockHistoryFilter struct {
	PageRequest
	Branch string `query:"branch"`
	Item   string `query:"item"`
	Type   string `query:"type"`
}

// StockTransactionResponse transacción del kardex.
type StockTransactionResponse struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Branch  string `json:"branch"`
	Type    string `json:"type"`
	ItemKey string `json:"item_key"`
	Item    string `json:"item"`
	Qty     int    `json:"qty"`
	Ref     string `json:"ref"`
}

// StockItemResponse nivel de un insumo con su umbral y ocupación.
type StockItemResponse struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	Level     int    `json:"level"`
	Threshold int    `json:"threshold"`
	Capacity  int    `json:"capacity"`
	Percent   int    `json:"percent"`
	Low       bool   `json:"low"`
}

// BranchStockResponse tarjeta de stock de una sucursal.
type BranchStockResponse struct {
	Branch string              `json:"branch"`
	Items  []StockItemResponse `json:"items"`
}

// LowStockAlertResponse alerta de stock bajo.
type LowStockAlertResponse struct {
	Branch    string `json:"branch"`
	Item      string `json:"item"`
	Level     int    `json:"level"`
	Threshold int    `json:"threshold"`
	Message   string `json:"message"`
}

// ReconcileResponse resultado de la conciliación del kardex.
type ReconcileResponse struct {
	Balanced      bool                  `json:"balanced"`
	Discrepancies []StockDiscrepancyDTO `json:"discrepancies,omitempty"`
}

// StockDiscrepancyDTO diferencia nivel vs suma de transacciones.
type StockDiscrepancyDTO struct {
	Branch string `json:"branch"`
	Item   string `json:"item"`
	Level  int    `json:"level"`
	Sum    int    `json:"sum"`
}
