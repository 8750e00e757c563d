package service

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrConflict is returned when an optimistic version check fails.
var ErrConflict = errors.New("record was modified by another request")

// ValidationError is a client-correctable input problem. The handler
// layer maps it to 400 with the offending field in the details payload.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConstraintError surfaces a store constraint violation with the
// offending column/constraint named, without leaking the raw driver
// error to the client.
type ConstraintError struct {
	Kind       string // "unique" or "foreign_key"
	Constraint string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s constraint violated: %s", e.Kind, e.Constraint)
}

// Postgres error codes for constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateStoreError maps driver-level constraint failures onto the
// client-facing taxonomy. Everything else passes through untouched and
// ends up as a generic 500.
func translateStoreError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &ConstraintError{Kind: "unique", Constraint: pgErr.ConstraintName}
		case pgForeignKeyViolation:
			return &ConstraintError{Kind: "foreign_key", Constraint: pgErr.ConstraintName}
		}
	}
	return err
}
