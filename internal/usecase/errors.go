package usecase

import (
	"errors"
)

// Service-level failures the handlers map onto the HTTP taxonomy. Anything
// not listed here is a storage failure and surfaces as 500.
var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so a login response never reveals which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrWrongPassword rejects a password change whose current password
	// does not match.
	ErrWrongPassword = errors.New("current password incorrect")

	ErrNotFound = errors.New("not found")
)

// InvalidInputError names the first failing validation rule.
type InvalidInputError struct {
	Msg string
}

func (e *InvalidInputError) Error() string {
	return e.Msg
}

func invalidInput(msg string) error {
	return &InvalidInputError{Msg: msg}
}
