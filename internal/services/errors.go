package services

import "errors"

// Errors returned by AuthService. Handlers translate these into the
// HTTP contract (409 and 401 respectively).
var (
	// ErrUsernameTaken is returned by Register when the candidate's
	// username exactly matches an existing chef's.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials is returned by Login for an unknown
	// username or a wrong password alike; callers cannot tell which.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
