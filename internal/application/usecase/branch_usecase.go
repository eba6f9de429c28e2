package usecase

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/fumimanager/internal/application/dto"
	"github.com/jhoicas/fumimanager/internal/domain/entity"
	"github.com/jhoicas/fumimanager/internal/domain/record"
	"github.com/jhoicas/fumimanager/internal/domain/repository"
)

// BranchUseCase gestión de sucursales.
type BranchUseCase struct {
	store repository.RecordStore[entity.Branch]
	log   zerolog.Logger
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(store repository.RecordStore[entity.Branch], log zerolog.Logger) *BranchUseCase {
	return &BranchUseCase{store: store, log: log}
}

// Create agrega una sucursal al final; estado Active si no se indica. El código es único.
func (uc *BranchUseCase) Create(in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	b, err := uc.store.CreateUnique(entity.Branch{
		Name:     in.Name,
		Code:     in.Code,
		Manager:  in.Manager,
		Phone:    in.Phone,
		Location: in.Location,
		GST:      strings.ToUpper(in.GST),
		Status:   in.Status,
	}, sameBranchCode)
	if err != nil {
		return nil, fmt.Errorf("crear sucursal: %w", err)
	}
	uc.log.Info().Str("id", b.ID).Str("code", b.Code).Msg("sucursal creada")
	return toBranchResponse(b), nil
}

// GetByID obtiene una sucursal.
func (uc *BranchUseCase) GetByID(id string) (*dto.BranchResponse, error) {
	b, err := uc.store.Get(id)
	if err != nil {
		return nil, err
	}
	return toBranchResponse(b), nil
}

// Update aplica los campos informados. Un código ya usado por otra sucursal es ErrDuplicate.
func (uc *BranchUseCase) Update(id string, in dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	in.Name = trimmed(in.Name)
	if in.Code != nil {
		code := strings.ToUpper(strings.TrimSpace(*in.Code))
		in.Code = &code
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	b, err := uc.store.UpdateUnique(id, func(b *entity.Branch) error {
		if in.Name != nil {
			b.Name = *in.Name
		}
		if in.Code != nil {
			b.Code = *in.Code
		}
		if in.Manager != nil {
			b.Manager = *in.Manager
		}
		if in.Phone != nil {
			b.Phone = *in.Phone
		}
		if in.Location != nil {
			b.Location = *in.Location
		}
		if in.GST != nil {
			b.GST = strings.ToUpper(*in.GST)
		}
		if in.Status != nil {
			b.Status = *in.Status
		}
		return nil
	}, sameBranchCode)
	if err != nil {
		return nil, fmt.Errorf("actualizar sucursal: %w", err)
	}
	return toBranchResponse(b), nil
}

// ToggleStatus alterna Active/Maintenance.
func (uc *BranchUseCase) ToggleStatus(id string) (*dto.BranchResponse, error) {
	b, err := uc.store.ToggleStatus(id, entity.StatusActive, entity.StatusMaintenance)
	if err != nil {
		return nil, err
	}
	return toBranchResponse(b), nil
}

// Delete elimina la sucursal con confirmación.
func (uc *BranchUseCase) Delete(id string, confirm bool) error {
	return uc.store.Remove(id, confirm)
}

// List busca por nombre, ubicación o código.
func (uc *BranchUseCase) List(f dto.BranchFilter) *dto.BranchListResponse {
	f.DefaultPage()
	matches := uc.store.Filter(
		record.MatchText(f.Search,
			func(b entity.Branch) string { return b.Name },
			func(b entity.Branch) string { return b.Location },
			func(b entity.Branch) string { return b.Code }),
		record.MatchEnum(f.Status, func(b entity.Branch) string { return b.Status }),
	)
	page := record.Page(matches, f.Limit, f.Offset)
	items := make([]dto.BranchResponse, 0, len(page))
	for _, b := range page {
		items = append(items, *toBranchResponse(b))
	}
	return &dto.BranchListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: len(matches)},
		Stats: uc.Stats(),
	}
}

// Stats total, activas y en mantenimiento.
func (uc *BranchUseCase) Stats() dto.BranchStats {
	c := record.Tally(uc.store.All(), func(b entity.Branch) string { return b.Status })
	return dto.BranchStats{
		Total:       c.Total,
		Active:      c.Of(entity.StatusActive),
		Maintenance: c.Of(entity.StatusMaintenance),
	}
}

func sameBranchCode(existing, draft entity.Branch) bool {
	return strings.EqualFold(existing.Code, draft.Code)
}

func toBranchResponse(b entity.Branch) *dto.BranchResponse {
	return &dto.BranchResponse{
		ID:       b.ID,
		Name:     b.Name,
		Code:     b.Code,
		Manager:  b.Manager,
		Phone:    b.Phone,
		Location: b.Location,
		GST:      b.GST,
		Status:   b.Status,
	}
}
