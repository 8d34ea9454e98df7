// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	// ErrValidation indicates a required field is missing or malformed.
	ErrValidation = errors.New("invalid input provided")
	// ErrInvalidCredentials covers both unknown username and wrong password;
	// callers get no signal about which of the two checks failed.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidToken indicates a malformed, tampered or expired token.
	ErrInvalidToken = errors.New("token invalid")
	// ErrUnauthorized indicates a protected operation was attempted without a principal.
	ErrUnauthorized = errors.New("authentication required")
	// ErrForbidden indicates the principal is known but does not own the resource.
	ErrForbidden = errors.New("operation not permitted")
	// ErrNotFound indicates the referenced entity does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrDuplicateUsername indicates a unique-username violation at registration.
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrPartialWrite indicates the two-step ownership write could not be
	// confirmed as fully applied.
	ErrPartialWrite = errors.New("ownership write incomplete")
	// ErrStorage wraps opaque persistence failures.
	ErrStorage = errors.New("storage failure")
)

// IsError reports whether err matches the given sentinel error.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
