package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Error codes shared between use cases and handlers. Storage-driver errors
// are translated into one of these at the repository boundary, never in
// handlers.
const (
	CodeInvalidDate        = "invalid_date"
	CodeInvalidID          = "invalid_id"
	CodeInvalidInput       = "invalid_input"
	CodePastDate           = "past_date"
	CodeSlotConflict       = "slot_conflict"
	CodeNotFound           = "not_found"
	CodeEmailInUse         = "email_in_use"
	CodeInvalidCredentials = "invalid_credentials"
	CodeForbidden          = "forbidden"
	CodeInternal           = "internal_error"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code from a business error, or CodeInternal for
// anything unrecognized so raw storage detail never reaches a caller.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return CodeInternal
}

const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation. Duplicate emails and duplicate slots both surface this way.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
