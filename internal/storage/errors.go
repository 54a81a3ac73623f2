package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Error taxonomy surfaced by the repositories. Callers match with errors.Is;
// the engine's own diagnostic stays attached via wrapping.
var (
	// ErrConstraintViolation covers uniqueness and primary-key collisions,
	// including case-insensitive username/room-name clashes.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrReferentialIntegrity means a foreign-key target does not exist.
	ErrReferentialIntegrity = errors.New("referential integrity violation")

	// ErrNotFound is returned for reads (and targeted deletes) against a
	// non-existent identifier.
	ErrNotFound = errors.New("record not found")
)

// Postgres SQLSTATE codes, per the pgx error model.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
)

// Classify maps an engine error onto the storage taxonomy, wrapping so both
// errors.Is on the sentinel and the original diagnostic survive. Unrecognized
// errors pass through untouched.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgCheckViolation, pgNotNullViolation:
			return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %v", ErrReferentialIntegrity, err)
		}
		return err
	}

	// The SQLite driver reports constraint failures only through the message
	// text, so match on the diagnostic strings it emits.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%w: %v", ErrReferentialIntegrity, err)
	case strings.Contains(msg, "UNIQUE constraint failed"),
		strings.Contains(msg, "CHECK constraint failed"),
		strings.Contains(msg, "NOT NULL constraint failed"),
		strings.Contains(msg, "constraint failed"):
		return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	}

	return err
}
