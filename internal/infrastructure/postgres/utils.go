package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Andres06271/inventory-system-backend/internal/domain"
)

// Códigos de error de PostgreSQL que interesan al dominio.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgErrCode(err) == pgUniqueViolation
}

// isForeignKeyViolation verifica si un error es una FK a un registro inexistente (23503).
func isForeignKeyViolation(err error) bool {
	return pgErrCode(err) == pgForeignKeyViolation
}

// isCheckViolation verifica si un error es una violación de check constraint (23514).
func isCheckViolation(err error) bool {
	return pgErrCode(err) == pgCheckViolation
}

// mapConstraintError traduce violaciones de constraints a sentinelas de
// dominio; devuelve nil si el error no es de constraint (el caller lo envuelve).
func mapConstraintError(err error) error {
	switch pgErrCode(err) {
	case pgUniqueViolation:
		return domain.ErrDuplicate
	case pgForeignKeyViolation:
		return domain.ErrInvalidReference
	case pgCheckViolation:
		return domain.ErrInvalidInput
	}
	return nil
}
