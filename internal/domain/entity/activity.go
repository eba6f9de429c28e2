package entity

import "time"

// Niveles de una entrada de actividad.
const (
	ActivitySuccess = "success"
	ActivityError   = "error"
	ActivityInfo    = "info"
	ActivityWarning = "warning"
)

// ActivityEntry entrada del registro de actividad del panel de administración.
type ActivityEntry struct {
	ID     string
	Action string
	Actor  string
	Status string
	At     time.Time
}
