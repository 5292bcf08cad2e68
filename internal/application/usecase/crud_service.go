package usecase

import (
	"context"

	"github.com/jhoicas/cafes-platform-api/internal/domain"
	"github.com/jhoicas/cafes-platform-api/internal/domain/repository"
	"github.com/jhoicas/cafes-platform-api/pkg/validator"
)

// CrudService es el flujo genérico validar→sanear→persistir que comparten
// los casos de uso por entidad. Validate y Sanitize son estrategias
// obligatorias por entidad; Build materializa la entidad desde la entrada y
// Apply copia la entrada sobre una entidad existente (para Update). Si la
// validación falla, la llamada corta sin tocar el almacenamiento.
type CrudService[In any, T any] struct {
	Repo     repository.Crud[T]
	Validate func(v *validator.Validator, in In) // acumula errores en v
	Sanitize func(in In) In
	Build    func(in In) *T
	Apply    func(in In, item *T)
}

// Create valida, sanea y persiste. Devuelve la entidad creada.
func (s *CrudService[In, T]) Create(ctx context.Context, in In) (*T, error) {
	clean, err := s.check(in)
	if err != nil {
		return nil, err
	}
	item := s.Build(clean)
	if err := s.Repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update valida, sanea, aplica la entrada sobre la entidad existente y
// persiste. Devuelve domain.ErrNotFound si el id no existe.
func (s *CrudService[In, T]) Update(ctx context.Context, id string, in In) (*T, error) {
	clean, err := s.check(in)
	if err != nil {
		return nil, err
	}
	item, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	s.Apply(clean, item)
	if err := s.Repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetByID pasa directo al repositorio.
func (s *CrudService[In, T]) GetByID(ctx context.Context, id string) (*T, error) {
	return s.Repo.GetByID(ctx, id)
}

// GetAll pasa directo al repositorio.
func (s *CrudService[In, T]) GetAll(ctx context.Context) ([]*T, error) {
	return s.Repo.List(ctx)
}

// Delete pasa directo al repositorio.
func (s *CrudService[In, T]) Delete(ctx context.Context, id string) (bool, error) {
	return s.Repo.Delete(ctx, id)
}

func (s *CrudService[In, T]) check(in In) (In, error) {
	v := validator.New()
	s.Validate(v, in)
	if !v.IsValid() {
		var zero In
		return zero, domain.NewValidationError(v.Errors()...)
	}
	return s.Sanitize(in), nil
}
