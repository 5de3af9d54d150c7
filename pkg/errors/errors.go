// Package errors provides structured error handling for coltable.
package errors

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrorType represents the category of a coltable error. Every kind here
// is a programmer error, not a recoverable runtime condition: arity
// mismatches and unimplemented representations are reported at
// construction/freeze time, ordinal and primitive-kind violations are
// fatal and terminate the operation.
type ErrorType string

const (
	// ErrorTypeArity covers schema/column length mismatches at Table construction.
	ErrorTypeArity ErrorType = "arity"
	// ErrorTypeOrdinal covers out-of-range row ordinals passed to get/advance.
	ErrorTypeOrdinal ErrorType = "ordinal"
	// ErrorTypeUnsupportedPrimitive covers a codec asked to decode a kind outside its declared set.
	ErrorTypeUnsupportedPrimitive ErrorType = "unsupported_primitive"
	// ErrorTypeFreezePrecondition covers non-homogeneous value kinds inside a typed column.
	ErrorTypeFreezePrecondition ErrorType = "freeze_precondition"
	// ErrorTypeUnimplemented covers a representation whose freeze/decode path is not realized.
	ErrorTypeUnimplemented ErrorType = "unimplemented"
)

// Error represents a structured error with context.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Details map[string]any
	Stack   []StackFrame
}

// StackFrame represents a single frame in the call stack.
type StackFrame struct {
	Function string
	File     string
	Line     int
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds a key-value detail to the error.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new error with the given type and message.
func New(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Stack:   captureStack(2),
	}
}

// Newf creates a new error with a formatted message.
func Newf(errType ErrorType, format string, args...any) *Error {
	return New(errType, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, errType ErrorType, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Type:    errType,
			Message: message,
			Cause:   err,
			Stack:   existingErr.Stack,
		}
	}

	return &Error{
		Type:    errType,
		Message: message,
		Cause:   err,
		Stack:   captureStack(2),
	}
}

// IsType checks if the error is of the given type.
func IsType(err error, errType ErrorType) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Type == errType
}

// captureStack captures the current call stack.
func captureStack(skip int) []StackFrame {
	const maxFrames = 32
	frames := make([]StackFrame, 0, maxFrames)

	for i := skip; i < maxFrames+skip; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}

		frames = append(frames, StackFrame{
			Function: fn.Name(),
			File:     file,
			Line:     line,
		})
	}

	return frames
}
