package model

import (
	"errors"
	"fmt"
)

// ErrInvalidID is the sentinel wrapped by every identifier validation error.
var ErrInvalidID = errors.New("invalid identifier")

// ErrZeroFactor is returned when a reaction is scaled by zero.
var ErrZeroFactor = errors.New("chemlite: stoichiometric factor must not be zero")

// IDError reports an identifier rejected for an entity of the given kind.
type IDError struct {
	Kind   string
	Reason string
}

func (e *IDError) Error() string {
	return fmt.Sprintf("chemlite: invalid %s identifier: %s", e.Kind, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidID) hold for every IDError.
func (e *IDError) Unwrap() error {
	return ErrInvalidID
}

func validateID(kind, id string) error {
	if id == "" {
		return &IDError{Kind: kind, Reason: "identifier must not be empty"}
	}
	return nil
}
