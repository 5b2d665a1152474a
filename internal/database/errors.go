package database

import (
	"errors"

	"github.com/lib/pq"
)

// PostgreSQL SQLSTATE codes the API translates into client errors
const (
	CodeInvalidTextRepresentation pq.ErrorCode = "22P02"
	CodeForeignKeyViolation       pq.ErrorCode = "23503"
)

// PgError extracts the driver error from err's chain
func PgError(err error) (*pq.Error, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr, true
	}
	return nil, false
}

// IsInvalidTextRepresentation reports a value that could not be parsed
// into the column type, e.g. "abc" for an integer key.
func IsInvalidTextRepresentation(err error) bool {
	return hasCode(err, CodeInvalidTextRepresentation)
}

// IsForeignKeyViolation reports a write referencing a missing parent row
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, CodeForeignKeyViolation)
}

// ViolatedConstraint returns the constraint name carried by a driver error
func ViolatedConstraint(err error) string {
	if pqErr, ok := PgError(err); ok {
		return pqErr.Constraint
	}
	return ""
}

func hasCode(err error, code pq.ErrorCode) bool {
	pqErr, ok := PgError(err)
	return ok && pqErr.Code == code
}
