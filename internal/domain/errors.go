package domain

import (
	"errors"
	"fmt"
)

// Team validation errors
var (
	ErrInvalidTeam = errors.New("invalid team data")
)

// Catalog errors
var (
	ErrUnknownCharacter   = errors.New("unknown character")
	ErrDuplicateCharacter = errors.New("character selected more than once")
	ErrTeamTooLarge       = errors.New("a team holds at most 4 characters")
	ErrInvalidWeekday     = errors.New("invalid weekday")
)

// ValidationError describes malformed input rejected before any mutation
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err carries a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
