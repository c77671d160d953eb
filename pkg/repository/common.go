package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by keyed lookups and updates when no row matches
var ErrNotFound = errors.New("not found")

// errCritical terminates repeater retries, matched by criticalError
var errCritical = errors.New("critical database error")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

// Is makes any criticalError match errCritical
func (e *criticalError) Is(target error) bool {
	return target == errCritical
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// sortDirection maps a listing sort value to an SQL direction, DESC unless ASC is asked for
func sortDirection(sort string) string {
	if strings.EqualFold(sort, "ASC") {
		return "ASC"
	}
	return "DESC"
}
