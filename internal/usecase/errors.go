package usecase

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// isDuplicateKeyError checks if the error is a unique violation. gorm
// translates it to ErrDuplicatedKey when TranslateError is on; a raw
// PostgreSQL error must name the constraint.
func isDuplicateKeyError(err error, constraintName string) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// sqliteForeignKeyMessage is what SQLite reports for a violated foreign key.
// The gorm sqlite dialect does not translate it and names no constraint.
const sqliteForeignKeyMessage = "FOREIGN KEY constraint failed"

// isForeignKeyError checks if the error is a foreign key violation
func isForeignKeyError(err error, constraintName string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	if strings.Contains(err.Error(), sqliteForeignKeyMessage) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
