package usecase

import (
	"strings"
	"time"

	"github.com/jhoicas/fumimanager/internal/application/dto"
	"github.com/jhoicas/fumimanager/internal/domain/entity"
	"github.com/jhoicas/fumimanager/internal/domain/record"
	"github.com/jhoicas/fumimanager/internal/domain/repository"
)

var _ repository.ActivitySink = (*ActivityUseCase)(nil)

// ActivityUseCase registro de actividad; la entrada más reciente va primero.
type ActivityUseCase struct {
	store repository.RecordStore[entity.ActivityEntry]
	now   func() time.Time
}

// NewActivityUseCase construye el caso de uso. now puede ser nil.
func NewActivityUseCase(store repository.RecordStore[entity.ActivityEntry], now func() time.Time) *ActivityUseCase {
	if now == nil {
		now = time.Now
	}
	return &ActivityUseCase{store: store, now: now}
}

// Record agrega una entrada.
func (uc *ActivityUseCase) Record(action, actor, status string) {
	uc.store.Create(entity.ActivityEntry{Action: action, Actor: actor, Status: status, At: uc.now()})
}

// List filtra por estado; "all" o vacío devuelve todo.
func (uc *ActivityUseCase) List(f dto.ActivityFilter) []dto.ActivityResponse {
	f.DefaultPage()
	status := f.Status
	if strings.EqualFold(status, "all") {
		status = ""
	}
	list := record.Page(uc.store.Filter(
		record.MatchEnum(status, func(a entity.ActivityEntry) string { return a.Status }),
	), f.Limit, f.Offset)

	out := make([]dto.ActivityResponse, 0, len(list))
	for _, a := range list {
		out = append(out, dto.ActivityResponse{ID: a.ID, Action: a.Action, Actor: a.Actor, Status: a.Status, At: a.At})
	}
	return out
}
