package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE 23503: foreign_key_violation
const fkViolationCode = "23503"

// IsForeignKeyViolation detecta referencias colgadas (por ejemplo un
// alumno_id inexistente) reportadas por Postgres.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == fkViolationCode
	}
	return false
}
