package domain

import (
	"errors"
	"fmt"
)

// Authentication failures. A hash-verification error is collapsed into
// ErrInvalidCredentials by the service so callers cannot distinguish a
// broken hash from a wrong password.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrHashFailure        = errors.New("password hash error")
)

// NotFoundError names the entity kind so the boundary can report
// "case 7 not found" instead of a bare storage error.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}
