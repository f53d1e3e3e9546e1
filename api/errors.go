// Package api
// Author: momentics <momentics@gmail.com>
//
// Status codes and structured errors shared by the ring engine and its
// storage collaborators.

package api

import (
	"errors"
	"fmt"
)

// Status is the stable result code reported by ring operations.
type Status int

const (
	StatusOK Status = iota
	StatusFull
	StatusNotEnoughSpace
	StatusNullPointer
	StatusNoData
	StatusInsufficientData
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusFull:
		return "full"
	case StatusNotEnoughSpace:
		return "not enough space"
	case StatusNullPointer:
		return "null pointer"
	case StatusNoData:
		return "no data"
	case StatusInsufficientData:
		return "insufficient data"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Common errors used across the library. Match with errors.Is; any *Error
// carrying the same Code matches its sentinel.
var (
	ErrFull             = NewError(StatusFull, "ring buffer is full")
	ErrNotEnoughSpace   = NewError(StatusNotEnoughSpace, "not enough space in ring buffer")
	ErrNullPointer      = NewError(StatusNullPointer, "nil ring buffer or argument")
	ErrNoData           = NewError(StatusNoData, "no data in ring buffer")
	ErrInsufficientData = NewError(StatusInsufficientData, "not enough data in ring buffer")

	// ErrInvalidArgument is reported for arguments that are present but unusable.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Error represents a structured error with code and context.
type Error struct {
	Code    Status
	Op      string
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if len(e.Context) == 0 {
		return msg
	}
	return fmt.Sprintf("%s (context: %+v)", msg, e.Context)
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// NewError creates a new structured error.
func NewError(code Status, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// OpError returns a copy of the sentinel for code annotated with op.
func OpError(code Status, op string) *Error {
	return &Error{Code: code, Op: op, Message: sentinelMessage(code)}
}

// WithContext returns a copy of e with key set in its context. The receiver
// is never modified, so shared errors stay intact.
func (e *Error) WithContext(key string, value any) *Error {
	c := *e
	c.Context = make(map[string]any, len(e.Context)+1)
	for k, v := range e.Context {
		c.Context[k] = v
	}
	c.Context[key] = value
	return &c
}

// StatusOf maps err to its Status. A nil error is StatusOK; an error that
// carries no *Error is reported as Status(-1).
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Status(-1)
}

func sentinelMessage(code Status) string {
	switch code {
	case StatusFull:
		return ErrFull.Message
	case StatusNotEnoughSpace:
		return ErrNotEnoughSpace.Message
	case StatusNullPointer:
		return ErrNullPointer.Message
	case StatusNoData:
		return ErrNoData.Message
	case StatusInsufficientData:
		return ErrInsufficientData.Message
	default:
		return code.String()
	}
}
