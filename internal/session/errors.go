package session

import (
	"errors"
	"fmt"

	"github.com/roach88/keycalc/internal/ir"
)

// ActionError is returned when an action cannot be dispatched to the engine.
// The engine state is unchanged when Apply returns an ActionError.
type ActionError struct {
	// Code identifies the error category.
	Code ActionErrorCode

	// Action is the rejected action.
	Action ir.Action
}

// ActionErrorCode categorizes action errors.
type ActionErrorCode string

const (
	// ErrCodeUnknownAction indicates an action kind the engine has no method for.
	ErrCodeUnknownAction ActionErrorCode = "UNKNOWN_ACTION"

	// ErrCodeInvalidDigit indicates a digit action whose value is not 0-9.
	ErrCodeInvalidDigit ActionErrorCode = "INVALID_DIGIT"

	// ErrCodeUnknownOperator indicates an operator action whose value is not + - × ÷.
	ErrCodeUnknownOperator ActionErrorCode = "UNKNOWN_OPERATOR"

	// ErrCodeUnexpectedValue indicates a value on an action kind that takes none.
	ErrCodeUnexpectedValue ActionErrorCode = "UNEXPECTED_VALUE"
)

// Error implements the error interface.
func (e *ActionError) Error() string {
	if e.Action.Value != "" {
		return fmt.Sprintf("%s: %s %q", e.Code, e.Action.Kind, e.Action.Value)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Action.Kind)
}

// IsInvalidDigit returns true if err is an ActionError for a bad digit.
// Uses errors.As to handle wrapped errors.
func IsInvalidDigit(err error) bool {
	return hasCode(err, ErrCodeInvalidDigit)
}

// IsUnknownOperator returns true if err is an ActionError for a bad operator.
func IsUnknownOperator(err error) bool {
	return hasCode(err, ErrCodeUnknownOperator)
}

// IsUnknownAction returns true if err is an ActionError for an unknown kind.
func IsUnknownAction(err error) bool {
	return hasCode(err, ErrCodeUnknownAction)
}

func hasCode(err error, code ActionErrorCode) bool {
	var ae *ActionError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}
