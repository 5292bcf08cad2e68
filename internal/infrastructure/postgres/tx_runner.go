package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/cafes-platform-api/internal/application/auth"
	"github.com/jhoicas/cafes-platform-api/internal/application/usecase"
	"github.com/jhoicas/cafes-platform-api/internal/domain/repository"
)

// Ensure TxRunner implements auth.TxRunner y usecase.PartnershipTxRunner.
var _ auth.TxRunner = (*TxRunner)(nil)
var _ usecase.PartnershipTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Los chequeos check-then-insert (email único, par de partnership pendiente)
// corren aquí dentro de la misma tx que el insert.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunUsers inicia una transacción, ejecuta fn con un repo de usuarios atado a
// la tx y hace Commit o Rollback.
func (r *TxRunner) RunUsers(ctx context.Context, fn func(users repository.UserRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUserRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPartnerships igual que RunUsers pero con el repo de solicitudes.
func (r *TxRunner) RunPartnerships(ctx context.Context, fn func(partnerships repository.PartnershipRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPartnershipRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
