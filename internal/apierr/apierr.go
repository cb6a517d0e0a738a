package apierr

import (
	"errors"
	"strings"
)

// Domain sentinels. Services wrap these in *Error so handlers can match a
// category with errors.Is while still carrying a route-facing message.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrAlreadyLiked       = errors.New("already liked")
	ErrNotLiked           = errors.New("not liked")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Error struct {
	Status int
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, msg string, err error) *Error {
	return &Error{Status: status, Msg: msg, Err: err}
}

// FieldError mirrors the {msg, param} objects clients already consume from
// the validation gate.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Msg)
	}
	return strings.Join(msgs, "; ")
}

func NewValidation(fields ...FieldError) *ValidationError {
	return &ValidationError{Errors: fields}
}
