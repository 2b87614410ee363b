package domainerrors

import "errors"

// Code represents a domain error category independent of any caller.
// These codes describe what went wrong in business logic terms.
type Code string

const (
	CodeNullArgument    Code = "null_argument"
	CodeInvalidArgument Code = "invalid_argument"
	CodeBadRequest      Code = "bad_request"
	CodeValidation      Code = "validation_failed"
	CodeInternal        Code = "internal_error"
)

// Error wraps domain failures with a stable code.
// Param names the offending argument when the failure is tied to one input.
type Error struct {
	Code    Code
	Param   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Param != "" {
		return e.Param + ": " + string(e.Code)
	}
	return string(e.Code)
}

// Unwrap implements error unwrapping for error chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() to match errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new domain error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// NewNullArgument reports a required argument that was not supplied at all.
func NewNullArgument(param string) error {
	return &Error{Code: CodeNullArgument, Param: param, Message: param + " is required"}
}

// NewInvalidArgument reports an argument that was supplied but breaks a rule.
func NewInvalidArgument(param, msg string) error {
	return &Error{Code: CodeInvalidArgument, Param: param, Message: msg}
}

// Wrap creates a new domain error wrapping an existing error.
// If the wrapped error is already a domain error, the original code and param are preserved.
func Wrap(err error, code Code, msg string) error {
	var existing *Error
	if errors.As(err, &existing) {
		return &Error{Code: existing.Code, Param: existing.Param, Message: msg, Err: err}
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode checks if an error is a domain error with the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// ParamOf returns the offending parameter of the first domain error in the chain.
func ParamOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Param
	}
	return ""
}
