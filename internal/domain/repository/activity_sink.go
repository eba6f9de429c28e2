package repository

// ActivitySink destino del registro de actividad del panel de administración.
// status es uno de entity.ActivitySuccess, ActivityError, ActivityInfo, ActivityWarning.
type ActivitySink interface {
	Record(action, actor, status string)
}

// NopActivity descarta las entradas.
type NopActivity struct{}

func (NopActivity) Record(string, string, string) {}
