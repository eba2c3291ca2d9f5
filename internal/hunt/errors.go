package hunt

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a team (or riddle) does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateName is returned by Store.CreateTeam when the normalized
// team name is already taken.
var ErrDuplicateName = errors.New("team name already exists")

// ValidationError marks malformed or missing input. No state is mutated
// when one is returned.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// ConflictError marks a precondition failure: wrong current phase, phase
// already completed, or a duplicate team name. These are the defense
// against double and out-of-order submissions and are never bypassed.
type ConflictError struct {
	msg string
}

func (e *ConflictError) Error() string { return e.msg }

func conflictf(format string, args ...any) error {
	return &ConflictError{msg: fmt.Sprintf(format, args...)}
}
