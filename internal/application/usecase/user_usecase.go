package usecase

import (
	"context"

	"github.com/jhoicas/cafes-platform-api/internal/application/auth"
	"github.com/jhoicas/cafes-platform-api/internal/application/dto"
	"github.com/jhoicas/cafes-platform-api/internal/domain"
	"github.com/jhoicas/cafes-platform-api/internal/domain/entity"
	"github.com/jhoicas/cafes-platform-api/internal/domain/repository"
	"github.com/jhoicas/cafes-platform-api/pkg/validator"
)

// UserUseCase operaciones de administración y listados de cuentas.
// El registro y el login viven en application/auth.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List usuarios, opcionalmente filtrados por rol (pantalla de admin).
func (uc *UserUseCase) List(ctx context.Context, role string) ([]dto.UserResponse, error) {
	if role != "" {
		v := validator.New()
		roles := []string{entity.RoleVendor, entity.RoleCafeOwner, entity.RoleAdmin}
		if !v.InArray(role, roles, "El rol") {
			return nil, domain.NewValidationError(v.Errors()...)
		}
		list, err := uc.repo.ListByRole(ctx, role)
		if err != nil {
			return nil, err
		}
		return toUserResponses(list), nil
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toUserResponses(list), nil
}

// ActiveVendors vendedores activos ordenados por nombre (selector del
// formulario de partnership del dueño de café).
func (uc *UserUseCase) ActiveVendors(ctx context.Context) ([]dto.VendorOption, error) {
	list, err := uc.repo.ListActiveByRole(ctx, entity.RoleVendor)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendorOption, 0, len(list))
	for _, u := range list {
		out = append(out, dto.VendorOption{ID: u.ID, Username: u.Username})
	}
	return out, nil
}

// ToggleStatus invierte la activación de la cuenta (flip calculado por el
// store) y devuelve el nuevo estado. Dos toggles seguidos vuelven al estado
// original.
func (uc *UserUseCase) ToggleStatus(ctx context.Context, id string) (*dto.ToggleStatusResponse, error) {
	active, err := uc.repo.ToggleStatus(ctx, id)
	if err != nil {
		return nil, err
	}
	status := "suspended"
	if active {
		status = "active"
	}
	return &dto.ToggleStatusResponse{ID: id, Status: status}, nil
}

func toUserResponses(list []*entity.User) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out
}
