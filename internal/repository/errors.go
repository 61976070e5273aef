package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrNotFound is returned when a lookup, update or delete matches no row.
var ErrNotFound = errors.New("record not found")

const uniqueViolation pq.ErrorCode = "23505"

// constraintFields maps unique constraints to the JSON field they protect.
var constraintFields = map[string]string{
	"users_email_key":           "email",
	"contacts_phone_number_key": "phoneNumber",
}

// DuplicateError reports a write rejected by a unique index.
type DuplicateError struct {
	Field string
	Err   error
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate value for %s", e.Field)
}

func (e *DuplicateError) Unwrap() error {
	return e.Err
}

// IsDuplicate reports whether err is a uniqueness conflict on field.
func IsDuplicate(err error, field string) bool {
	var dupErr *DuplicateError
	return errors.As(err, &dupErr) && dupErr.Field == field
}

// classifyError turns driver-level unique violations into *DuplicateError and
// leaves every other error untouched.
func classifyError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolation {
		return err
	}

	field, ok := constraintFields[pqErr.Constraint]
	if !ok {
		field = pqErr.Constraint
	}
	return &DuplicateError{Field: field, Err: err}
}
