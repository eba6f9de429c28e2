package usecase

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/fumimanager/internal/application/dto"
	"github.com/jhoicas/fumimanager/internal/domain/entity"
	"github.com/jhoicas/fumimanager/internal/domain/repository"
)

// SettingsUseCase configuración del sistema editable por el administrador.
type SettingsUseCase struct {
	mu       sync.RWMutex
	current  entity.SystemSettings
	activity repository.ActivitySink
	log      zerolog.Logger
}

// NewSettingsUseCase parte de los valores iniciales.
func NewSettingsUseCase(initial entity.SystemSettings, activity repository.ActivitySink, log zerolog.Logger) *SettingsUseCase {
	if activity == nil {
		activity = repository.NopActivity{}
	}
	return &SettingsUseCase{current: initial, activity: activity, log: log}
}

// Get devuelve la configuración vigente.
func (uc *SettingsUseCase) Get() dto.SettingsResponse {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return toSettingsResponse(uc.current)
}

// MaintenanceMode indica si el acceso de no administradores está bloqueado.
func (uc *SettingsUseCase) MaintenanceMode() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.current.MaintenanceMode
}

// Update aplica los campos informados y deja constancia en la actividad.
func (uc *SettingsUseCase) Update(actor string, in dto.UpdateSettingsRequest) (dto.SettingsResponse, error) {
	if err := dto.Validate(in); err != nil {
		return dto.SettingsResponse{}, err
	}
	uc.mu.Lock()
	next := uc.current
	if in.AppName != nil {
		next.AppName = *in.AppName
	}
	if in.SupportEmail != nil {
		next.SupportEmail = *in.SupportEmail
	}
	if in.MaintenanceMode != nil {
		next.MaintenanceMode = *in.MaintenanceMode
	}
	uc.current = next
	uc.mu.Unlock()

	uc.log.Warn().Str("actor", actor).Bool("maintenance", next.MaintenanceMode).Msg("configuración modificada")
	uc.activity.Record("Config Changed", actor, entity.ActivityWarning)
	return toSettingsResponse(next), nil
}

func toSettingsResponse(s entity.SystemSettings) dto.SettingsResponse {
	return dto.SettingsResponse{
		AppName:         s.AppName,
		SupportEmail:    s.SupportEmail,
		MaintenanceMode: s.MaintenanceMode,
	}
}
