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

// UserUseCase gestión de usuarios desde el panel de administración.
type UserUseCase struct {
	store repository.RecordStore[entity.User]
	log   zerolog.Logger
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(store repository.RecordStore[entity.User], log zerolog.Logger) *UserUseCase {
	return &UserUseCase{store: store, log: log}
}

// Create agrega un usuario al final. El email no puede repetirse.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	u, err := uc.store.CreateUnique(entity.User{
		Name:   in.Name,
		Email:  in.Email,
		Role:   in.Role,
		Branch: in.Branch,
		Phone:  in.Phone,
		Status: in.Status,
	}, sameUserEmail)
	if err != nil {
		return nil, fmt.Errorf("crear usuario: %w", err)
	}
	uc.log.Info().Str("id", u.ID).Str("email", u.Email).Msg("usuario creado")
	return toUserResponse(u), nil
}

// GetByID obtiene un usuario.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	u, err := uc.store.Get(id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// Update aplica los campos informados. Un email ya usado por otro usuario es ErrDuplicate.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	in.Name = trimmed(in.Name)
	in.Email = trimmed(in.Email)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	u, err := uc.store.UpdateUnique(id, func(u *entity.User) error {
		if in.Name != nil {
			u.Name = *in.Name
		}
		if in.Email != nil {
			u.Email = *in.Email
		}
		if in.Role != nil {
			u.Role = *in.Role
		}
		if in.Branch != nil {
			u.Branch = *in.Branch
		}
		if in.Phone != nil {
			u.Phone = *in.Phone
		}
		if in.Status != nil {
			u.Status = *in.Status
		}
		return nil
	}, sameUserEmail)
	if err != nil {
		return nil, fmt.Errorf("actualizar usuario: %w", err)
	}
	return toUserResponse(u), nil
}

// ToggleStatus alterna Active/Inactive.
func (uc *UserUseCase) ToggleStatus(id string) (*dto.UserResponse, error) {
	u, err := uc.store.ToggleStatus(id, entity.StatusActive, entity.StatusInactive)
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// Delete elimina el usuario; sin confirm no cambia nada.
func (uc *UserUseCase) Delete(id string, confirm bool) error {
	if err := uc.store.Remove(id, confirm); err != nil {
		return err
	}
	uc.log.Info().Str("id", id).Msg("usuario eliminado")
	return nil
}

// List busca por nombre o email y filtra por rol y estado. Stats se calculan sobre toda la colección.
func (uc *UserUseCase) List(f dto.UserFilter) *dto.UserListResponse {
	f.DefaultPage()
	matches := uc.store.Filter(
		record.MatchText(f.Search,
			func(u entity.User) string { return u.Name },
			func(u entity.User) string { return u.Email }),
		record.MatchEnum(f.Role, func(u entity.User) string { return u.Role }),
		record.MatchEnum(f.Status, func(u entity.User) string { return u.Status }),
	)
	page := record.Page(matches, f.Limit, f.Offset)
	items := make([]dto.UserResponse, 0, len(page))
	for _, u := range page {
		items = append(items, *toUserResponse(u))
	}

	all := uc.store.All()
	byStatus := record.Tally(all, func(u entity.User) string { return u.Status })
	byRole := record.Tally(all, func(u entity.User) string { return u.Role })
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: len(matches)},
		Stats: dto.UserStats{
			Total:  byStatus.Total,
			Active: byStatus.Of(entity.StatusActive),
			Admins: byRole.Of(entity.UserRoleAdmin),
		},
		ByRole: byRole,
	}
}

func sameUserEmail(existing, draft entity.User) bool {
	return strings.EqualFold(existing.Email, draft.Email)
}

// trimmed recorta un campo opcional antes de validarlo.
func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}

func toUserResponse(u entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Branch: u.Branch,
		Phone:  u.Phone,
		Status: u.Status,
	}
}
