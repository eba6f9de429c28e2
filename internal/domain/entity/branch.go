package entity

// StatusMaintenance estado de una sucursal fuera de servicio temporal.
const StatusMaintenance = "Maintenance"

// Branch sucursal u oficina operativa.
type Branch struct {
	ID       string
	Name     string
	Code     string
	Manager  string
	Phone    string
	Location string
	GST      string
	Status   string // Active, Maintenance
}
