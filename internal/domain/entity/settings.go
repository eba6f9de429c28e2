package entity

// SystemSettings parámetros editables desde System Config.
type SystemSettings struct {
	AppName         string
	SupportEmail    string
	MaintenanceMode bool
}
