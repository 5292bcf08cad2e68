package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafes-platform-api/internal/application/usecase"
	"github.com/jhoicas/cafes-platform-api/internal/domain"
	"github.com/jhoicas/cafes-platform-api/internal/domain/entity"
)

func seedUser(repo *fakeUserRepo, id, username, role string, active bool) {
	repo.users[id] = &entity.User{
		ID:        id,
		Username:  username,
		Email:     username + "@example.com",
		Role:      role,
		Active:    active,
		CreatedAt: time.Now(),
	}
}

func TestUserList_FiltraPorRol(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "v1", "granos", entity.RoleVendor, true)
	seedUser(repo, "c1", "cafeteria", entity.RoleCafeOwner, true)
	uc := usecase.NewUserUseCase(repo)

	vendedores, err := uc.List(context.Background(), entity.RoleVendor)
	require.NoError(t, err)
	require.Len(t, vendedores, 1)
	assert.Equal(t, "granos", vendedores[0].Username)

	todos, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}

func TestUserList_RolInvalido_ErrorDeValidacion(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	_, err := uc.List(context.Background(), "superuser")
	_, ok := domain.AsValidation(err)
	assert.True(t, ok)
}

// El listado nunca expone el hash de la contraseña.
func TestUserList_NoExponeHash(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "v1", "granos", entity.RoleVendor, true)
	repo.users["v1"].PasswordHash = "$2a$10$secreto"
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "active", out[0].Status)
}

func TestActiveVendors_ExcluyeSuspendidosYOtrosRoles(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "v1", "granos", entity.RoleVendor, true)
	seedUser(repo, "v2", "suspendido", entity.RoleVendor, false)
	seedUser(repo, "c1", "cafeteria", entity.RoleCafeOwner, true)
	uc := usecase.NewUserUseCase(repo)

	vendors, err := uc.ActiveVendors(context.Background())
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, "v1", vendors[0].ID)
}

// Dos toggles seguidos vuelven al estado original.
func TestToggleStatus_RoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "v1", "granos", entity.RoleVendor, true)
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	out, err := uc.ToggleStatus(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "suspended", out.Status)

	out, err = uc.ToggleStatus(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "active", out.Status)
}

func TestToggleStatus_CuentaInexistente(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	_, err := uc.ToggleStatus(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
