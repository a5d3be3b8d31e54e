package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/shared"
	"github.com/mattn/go-sqlite3"
)

// isConstraintViolation reports whether err came from a failed sqlite constraint.
func isConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint
}

// IsForeignKeyViolation reports whether err came from a failed foreign key.
func IsForeignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
}

// wrap classifies a driver error for the given operation.
//
// Missing rows map to notFound, constraint failures to [shared.ErrConstraintViolation],
// and everything else to [shared.ErrPersistence].
func wrap(op string, err error, notFound error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return notFound
	case isConstraintViolation(err):
		return fmt.Errorf("%w: failed to %s: %w", shared.ErrConstraintViolation, op, err)
	default:
		return fmt.Errorf("%w: failed to %s: %w", shared.ErrPersistence, op, err)
	}
}

// affected checks that a write touched at least one row.
func affected(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to get affected rows: %v", shared.ErrPersistence, err)
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
