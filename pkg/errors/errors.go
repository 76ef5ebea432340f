// Package errors provides structured error handling for pagestate.
//
// Contract violations (a nil or unsupported host, a view registered before the
// builder was initialised) are programmer errors. They are returned to the
// caller as *PageError values and also reported to the global [ErrorHandler]
// so they show up in logs even when the caller drops the error.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidArgument indicates a nil, unsupported or unresolvable argument.
	KindInvalidArgument
	// KindIllegalState indicates a call made in the wrong lifecycle phase.
	KindIllegalState
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindIllegalState:
		return "illegal_state"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. A *PageError matches the sentinel of its Kind.
var (
	ErrInvalidArgument = stderrors.New("invalid argument")
	ErrIllegalState    = stderrors.New("illegal state")
)

// PageError represents a structured error raised by a pagestate operation.
type PageError struct {
	// Op is the operation that failed (e.g., "pagestate.Builder.Init").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *PageError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel matching the error's kind.
func (e *PageError) Is(target error) bool {
	switch e.Kind {
	case KindInvalidArgument:
		return target == ErrInvalidArgument
	case KindIllegalState:
		return target == ErrIllegalState
	}
	return false
}

// InvalidArgument builds a KindInvalidArgument error for op.
func InvalidArgument(op, format string, args ...any) *PageError {
	return &PageError{Op: op, Kind: KindInvalidArgument, Err: fmt.Errorf(format, args...)}
}

// IllegalState builds a KindIllegalState error for op.
func IllegalState(op, format string, args ...any) *PageError {
	return &PageError{Op: op, Kind: KindIllegalState, Err: fmt.Errorf(format, args...)}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "platform.Looper.Drain").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by pagestate.
type ErrorHandler interface {
	// HandleError is called when an operation fails.
	HandleError(err *PageError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
