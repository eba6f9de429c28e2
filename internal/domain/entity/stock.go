package entity

import "time"

// ItemKey clave de un insumo controlado por sucursal.
type ItemKey string

const (
	ItemMB           ItemKey = "MB"
	ItemALP          ItemKey = "ALP"
	ItemCertificates ItemKey = "Certificates"
)

// ItemKeys en orden de presentación.
var ItemKeys = []ItemKey{ItemMB, ItemALP, ItemCertificates}

// DisplayName nombre del insumo en el historial.
func (k ItemKey) DisplayName() string {
	switch k {
	case ItemMB:
		return "Methyl Bromide"
	case ItemALP:
		return "Alum. Phosphide"
	case ItemCertificates:
		return "Certificates"
	default:
		return string(k)
	}
}

// Valid indica si k es una clave conocida.
func (k ItemKey) Valid() bool {
	return k == ItemMB || k == ItemALP || k == ItemCertificates
}

// Tipos de transacción de stock.
const (
	StockInward      = "Inward"
	StockConsumption = "Consumption"
)

// StockTransaction registro inmutable del kardex. Qty es el delta con signo.
type StockTransaction struct {
	ID     int64
	Date   time.Time
	Branch string
	Type   string // Inward, Consumption
	Item   ItemKey
	Qty    int
	Ref    string
}

// StockLevel cantidades actuales de una sucursal por insumo.
type StockLevel map[ItemKey]int
