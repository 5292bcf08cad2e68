package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema DDL idempotente aplicado al arranque. El índice único de email y el
// índice parcial de solicitudes pendientes respaldan los chequeos
// check-then-insert de los casos de uso ante escrituras concurrentes.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		username      TEXT NOT NULL,
		email         TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL CHECK (role IN ('vendor', 'cafe_owner', 'admin')),
		is_active     BOOLEAN NOT NULL DEFAULT TRUE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email)`,
	`CREATE TABLE IF NOT EXISTS product_ads (
		id           UUID PRIMARY KEY,
		vendor_id    UUID NOT NULL REFERENCES users(id),
		product_name TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		price        NUMERIC(12,2) NOT NULL CHECK (price >= 0),
		category     TEXT NOT NULL DEFAULT '',
		image_url    TEXT NOT NULL DEFAULT '',
		status       TEXT NOT NULL DEFAULT 'pending'
		             CHECK (status IN ('pending', 'approved', 'rejected')),
		is_active    BOOLEAN NOT NULL DEFAULT TRUE,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS product_ads_status_idx ON product_ads (status)`,
	`CREATE INDEX IF NOT EXISTS product_ads_vendor_idx ON product_ads (vendor_id)`,
	`CREATE TABLE IF NOT EXISTS partnership_requests (
		id             UUID PRIMARY KEY,
		vendor_id      UUID NOT NULL REFERENCES users(id),
		cafe_owner_id  UUID NOT NULL REFERENCES users(id),
		message        TEXT NOT NULL DEFAULT '',
		proposed_terms TEXT NOT NULL DEFAULT '',
		status         TEXT NOT NULL DEFAULT 'pending'
		               CHECK (status IN ('pending', 'approved', 'rejected')),
		is_active      BOOLEAN NOT NULL DEFAULT TRUE,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS partnership_pending_pair_key
		ON partnership_requests (vendor_id, cafe_owner_id)
		WHERE status = 'pending'`,
}

// Migrate aplica el esquema. Seguro de ejecutar en cada arranque.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("aplicar esquema: %w", err)
		}
	}
	return nil
}
