// Package errors provides structured error handling for the widget core.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindAction indicates the action output channel rejected a payload.
	KindAction
	// KindDispatch indicates an event dispatch failure.
	KindDispatch
	// KindTheme indicates a theme file could not be loaded or resolved.
	KindTheme
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindAction:
		return "action"
	case KindDispatch:
		return "dispatch"
	case KindTheme:
		return "theme"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// CoreError represents a structured error in the widget core.
type CoreError struct {
	// Op is the operation that failed (e.g., "view.DispatchPointerPressed").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Element is the element type involved, if applicable.
	Element string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *CoreError) Error() string {
	if e.Element != "" {
		return fmt.Sprintf("%s [%s] element=%s: %v", e.Op, e.Kind, e.Element, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *CoreError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "view.Update").
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

// ErrorHandler receives errors reported by the widget core.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *CoreError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
