package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de violación de índice único. Aquí lo disparan users_email_key
// (registro) y partnership_pending_pair_key (solicitud pendiente duplicada).
const uniqueViolationCode = "23505"

// isUniqueViolation true si err proviene de un índice único violado; los
// repositorios lo traducen al error de dominio del conflicto correspondiente.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
