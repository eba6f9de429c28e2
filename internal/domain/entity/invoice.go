package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	InvoiceStatusPaid    = "Paid"
	InvoiceStatusPending = "Pending"
	InvoiceStatusOverdue = "Overdue"
)

// Invoice factura de servicio. Tax se deriva de Amount al crearla y no se recalcula.
type Invoice struct {
	ID      string
	Date    time.Time
	Client  string
	Address string
	Amount  decimal.Decimal // base imponible
	Tax     decimal.Decimal
	Items   int
	Status  string
}

// Total base + impuesto.
func (i Invoice) Total() decimal.Decimal {
	return i.Amount.Add(i.Tax)
}

// UnitPrice precio unitario de la única línea del documento (Amount / Items).
func (i Invoice) UnitPrice() decimal.Decimal {
	if i.Items <= 0 {
		return i.Amount
	}
	return i.Amount.Div(decimal.NewFromInt(int64(i.Items)))
}
