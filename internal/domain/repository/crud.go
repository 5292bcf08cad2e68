package repository

import "context"

// Crud define el conjunto mínimo de capacidades de persistencia que comparte
// cada entidad. Los puertos por entidad lo embeben y añaden sus consultas
// específicas; la búsqueda por dueño (vendor/cafe_owner) es siempre una
// operación nombrada aparte, nunca un match implícito de dos columnas.
type Crud[T any] interface {
	Create(ctx context.Context, item *T) error
	GetByID(ctx context.Context, id string) (*T, error)
	List(ctx context.Context) ([]*T, error)
	Update(ctx context.Context, item *T) error
	// Delete devuelve false si ninguna fila fue eliminada.
	Delete(ctx context.Context, id string) (bool, error)
}
