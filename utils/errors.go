package utils

import (
	"errors"
	"strings"
)

// Sentinel errors for the failure categories the API distinguishes.
// Services wrap these with context via fmt.Errorf("...: %w", Err...) and
// the HTTP layer maps them to status codes with errors.Is.
var (
	// ErrMalformedRequest covers bad header formats and wrong field
	// counts: the client must fix the request before retrying.
	ErrMalformedRequest = errors.New("malformed request")

	// ErrInvalidCredentials is deliberately shared between "no such
	// user" and "wrong password" to avoid account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized covers expired, tampered or wrong-type tokens,
	// distinct from ErrMalformedRequest so clients can tell "fix your
	// request" from "re-authenticate".
	ErrUnauthorized = errors.New("invalid or expired token")

	// ErrForbidden is returned by the authorization gates with no
	// further detail.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound covers missing movies, directors and genres.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists covers unique-constraint conflicts such as a
	// registered email or a duplicate movie title.
	ErrAlreadyExists = errors.New("already exists")

	// ErrConflict covers state conflicts other than duplicates, e.g.
	// deleting a director that movies still reference.
	ErrConflict = errors.New("conflict")
)

// IsDuplicateKeyError checks if the error is a unique-constraint
// violation. The string checks cover Postgres (SQLSTATE 23505) and the
// SQLite driver used in tests.
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "23505") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
