package domain

import (
	"errors"
	"fmt"
)

// ClientInputError reports a malformed or missing request parameter.
type ClientInputError struct {
	Param  string
	Reason string
}

func (e *ClientInputError) Error() string {
	return fmt.Sprintf("invalid %s parameter: %s", e.Param, e.Reason)
}

func InvalidInteger(param string) *ClientInputError {
	return &ClientInputError{Param: param, Reason: "must be an integer"}
}

// NotFoundError covers both absent and inactive entities.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found or inactive", e.Entity, e.Key)
}

// ConflictError rejects a delete that is still referenced.
type ConflictError struct {
	Entity     string
	ID         int64
	References int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("cannot delete %s %d: referenced by %d articles", e.Entity, e.ID, e.References)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsClientInput(err error) bool {
	var ci *ClientInputError
	return errors.As(err, &ci)
}

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}
