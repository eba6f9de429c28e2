package usecase

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/fumimanager/internal/application/dto"
	"github.com/jhoicas/fumimanager/internal/domain/entity"
	"github.com/jhoicas/fumimanager/internal/domain/record"
	"github.com/jhoicas/fumimanager/internal/domain/repository"
)

const emptyDetail = "-"

// MasterDataUseCase catálogos de exportadores, tratamientos y sucursales.
type MasterDataUseCase struct {
	store repository.RecordStore[entity.MasterDataEntry]
	log   zerolog.Logger
}

// NewMasterDataUseCase construye el caso de uso.
func NewMasterDataUseCase(store repository.RecordStore[entity.MasterDataEntry], log zerolog.Logger) *MasterDataUseCase {
	return &MasterDataUseCase{store: store, log: log}
}

// Create agrega la entrada al inicio del catálogo.
func (uc *MasterDataUseCase) Create(in dto.CreateMasterDataRequest) (*dto.MasterDataResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	e := uc.store.Create(entity.MasterDataEntry{
		Category: in.Category,
		Name:     in.Name,
		Detail:   detailOrDash(in.Detail),
	})
	return toMasterDataResponse(e), nil
}

// Update cambia nombre y/o detalle. La categoría es fija.
func (uc *MasterDataUseCase) Update(id string, in dto.UpdateMasterDataRequest) (*dto.MasterDataResponse, error) {
	if in.Name != nil {
		n := strings.TrimSpace(*in.Name)
		in.Name = &n
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	e, err := uc.store.Update(id, func(e *entity.MasterDataEntry) error {
		if in.Name != nil {
			e.Name = *in.Name
		}
		if in.Detail != nil {
			e.Detail = detailOrDash(*in.Detail)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toMasterDataResponse(e), nil
}

// ToggleStatus alterna Active/Inactive.
func (uc *MasterDataUseCase) ToggleStatus(id string) (*dto.MasterDataResponse, error) {
	e, err := uc.store.ToggleStatus(id, entity.StatusActive, entity.StatusInactive)
	if err != nil {
		return nil, err
	}
	return toMasterDataResponse(e), nil
}

// Delete elimina la entrada con confirmación.
func (uc *MasterDataUseCase) Delete(id string, confirm bool) error {
	return uc.store.Remove(id, confirm)
}

// List filtra por categoría y texto; las stats son de la categoría seleccionada.
func (uc *MasterDataUseCase) List(f dto.MasterDataFilter) *dto.MasterDataListResponse {
	f.DefaultPage()
	category := record.MatchEnum(f.Category, func(e entity.MasterDataEntry) string { return e.Category })
	matches := uc.store.Filter(category,
		record.MatchText(f.Search,
			func(e entity.MasterDataEntry) string { return e.Name },
			func(e entity.MasterDataEntry) string { return e.Detail }),
	)
	page := record.Page(matches, f.Limit, f.Offset)
	items := make([]dto.MasterDataResponse, 0, len(page))
	for _, e := range page {
		items = append(items, *toMasterDataResponse(e))
	}

	c := record.Tally(uc.store.Filter(category), func(e entity.MasterDataEntry) string { return e.Status })
	return &dto.MasterDataListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: len(matches)},
		Stats: dto.MasterDataStats{
			Total:    c.Total,
			Active:   c.Of(entity.StatusActive),
			Inactive: c.Of(entity.StatusInactive),
		},
	}
}

// Names nombres activos de una categoría, en el orden del catálogo.
func (uc *MasterDataUseCase) Names(category string) []string {
	list := uc.store.Filter(
		record.MatchEnum(category, func(e entity.MasterDataEntry) string { return e.Category }),
		record.MatchEnum(entity.StatusActive, func(e entity.MasterDataEntry) string { return e.Status }),
	)
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, e.Name)
	}
	return out
}

func detailOrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return emptyDetail
	}
	return strings.TrimSpace(s)
}

func toMasterDataResponse(e entity.MasterDataEntry) *dto.MasterDataResponse {
	return &dto.MasterDataResponse{
		ID:       e.ID,
		Category: e.Category,
		Name:     e.Name,
		Detail:   e.Detail,
		Status:   e.Status,
	}
}
