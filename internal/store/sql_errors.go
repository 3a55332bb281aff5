package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification tells whether a failed database call may succeed
// when attempted again.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// ErrorClassificator classifies driver errors of one SQL dialect.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// constraintViolation is a driver-independent view of an integrity error.
type constraintViolation int

const (
	noViolation constraintViolation = iota
	uniqueViolation
	foreignKeyViolation
)

// violation inspects pgx and go-sqlite3 errors for the integrity constraint
// that failed.
func violation(err error) constraintViolation {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return uniqueViolation
		case pgerrcode.ForeignKeyViolation:
			return foreignKeyViolation
		}
		return noViolation
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return uniqueViolation
		case sqlite3.ErrConstraintForeignKey:
			return foreignKeyViolation
		}
	}

	return noViolation
}
