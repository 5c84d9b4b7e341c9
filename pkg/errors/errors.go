// Package errors provides structured error reporting for the toolkit.
//
// Most toolkit failures are not returned to callers: they happen inside a
// frame, where the only sensible reaction is to skip one draw call and keep
// going. Those are sent to the global Handler with Report. Errors a caller
// can act on (configuration, surface setup) are returned normally.
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
	// KindConfig indicates invalid or unreadable configuration.
	KindConfig
	// KindSurface indicates a drawing surface failure.
	KindSurface
	// KindRegistry indicates an invalid widget registration.
	KindRegistry
	// KindInput indicates an event that could not be translated.
	KindInput
	// KindRender indicates a failure while rendering a widget.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindSurface:
		return "surface"
	case KindRegistry:
		return "registry"
	case KindInput:
		return "input"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ToolkitError represents a structured error reported by the toolkit.
type ToolkitError struct {
	// Op is the operation that failed (e.g., "widgets.Registry.Register").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ToolkitError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ToolkitError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "widgets.Registry.RenderAll").
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

// Handler receives errors reported by the toolkit.
type Handler interface {
	// HandleError is called when an error is reported.
	HandleError(err *ToolkitError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
