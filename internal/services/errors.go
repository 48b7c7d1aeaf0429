package services

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned for both unknown emails and
// password mismatches, so callers cannot tell the two apart.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrClientRequired is returned when a project is created without a
// client reference.
var ErrClientRequired = errors.New("project must be associated with a client")

// ErrEmailTaken is returned when registering with an email that is
// already in use.
var ErrEmailTaken = errors.New("email already exists")

// NotFoundError reports a missing entity by name and id.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with ID: %d", e.Entity, e.ID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// InvalidRoleError reports a role assignment outside the allow-list,
// echoing the rejected value.
type InvalidRoleError struct {
	Role string
}

func (e *InvalidRoleError) Error() string {
	return fmt.Sprintf("invalid role: %s", e.Role)
}
