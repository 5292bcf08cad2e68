package repository

import (
	"context"

	"github.com/jhoicas/cafes-platform-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Crud[entity.User]

	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// EmailExists comparación exacta (sensible a mayúsculas) contra el email almacenado.
	EmailExists(ctx context.Context, email string) (bool, error)
	ListByRole(ctx context.Context, role string) ([]*entity.User, error)
	ListActiveByRole(ctx context.Context, role string) ([]*entity.User, error)
	// ToggleStatus invierte is_active en el store (flip calculado por la DB,
	// inmune a lecturas obsoletas) y devuelve el nuevo valor.
	ToggleStatus(ctx context.Context, id string) (active bool, err error)
}
