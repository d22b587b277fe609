// Package apperr defines the sentinel errors shared across services and
// handlers. Services wrap these with context via fmt.Errorf("%w: ..."),
// handlers map them to HTTP status codes.
package apperr

import "errors"

var (
	// ErrValidation marks malformed input: duplicate video ids, empty
	// rankings, ids outside the caller's eligible set. Rejected before
	// any mutation.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized marks a missing or invalid session token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden marks a caller lacking the required role.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound marks an operation targeting a user/video that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks an operation invalid in the current state.
	ErrConflict = errors.New("conflict")

	// ErrNoVote is returned by submit when the user has never saved a ranking.
	ErrNoVote = errors.New("no saved ranking")
)

// IsConflict reports whether err is a state-conflict error (including ErrNoVote).
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) || errors.Is(err, ErrNoVote)
}
