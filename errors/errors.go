package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which operation was running when the error occurred
type Phase string

const (
	PhaseInit      Phase = "init"      // initializer construction
	PhaseRelease   Phase = "release"   // release action
	PhaseDuplicate Phase = "duplicate" // duplicate action
	PhaseTransfer  Phase = "transfer"  // detach / hand-off to a foreign owner
	PhaseLookup    Phase = "lookup"    // provider table lookups
	PhaseOpen      Phase = "open"      // provider acquisition
)

// Kind categorizes the error
type Kind string

const (
	KindCallback      Kind = "callback_failed"
	KindInvalidHandle Kind = "invalid_handle"
	KindNotFound      Kind = "not_found"
	KindClosed        Kind = "closed"
	KindInvalidInput  Kind = "invalid_input"
	KindUnsupported   Kind = "unsupported"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value      any
	Cause      error
	Phase      Phase
	Kind       Kind
	HandleType string
	Detail     string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.HandleType != "" {
		b.WriteString(": handle type ")
		b.WriteString(e.HandleType)
		if e.Value != nil {
			fmt.Fprintf(&b, " (value %v)", e.Value)
		}
	}

	if e.Detail != "" {
		if e.HandleType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// HandleType sets the Go type name of the handle
func (b *Builder) HandleType(t string) *Builder {
	b.err.HandleType = t
	return b
}

// Value sets the offending handle value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for guard callbacks

// InitFailed wraps a failure signalled by an initializer
func InitFailed(handleType string, cause error) *Error {
	return &Error{
		Phase:      PhaseInit,
		Kind:       KindCallback,
		HandleType: handleType,
		Detail:     "initializer failed",
		Cause:      cause,
	}
}

// ReleaseFailed wraps a failure signalled by a release action
func ReleaseFailed(handleType string, value any, cause error) *Error {
	return &Error{
		Phase:      PhaseRelease,
		Kind:       KindCallback,
		HandleType: handleType,
		Value:      value,
		Detail:     "release failed",
		Cause:      cause,
	}
}

// DuplicateFailed wraps a failure signalled by a duplicate action
func DuplicateFailed(handleType string, value any, cause error) *Error {
	return &Error{
		Phase:      PhaseDuplicate,
		Kind:       KindCallback,
		HandleType: handleType,
		Value:      value,
		Detail:     "duplicate failed",
		Cause:      cause,
	}
}

// Provider convenience constructors

// InvalidHandle creates an error for a handle the provider does not recognize
func InvalidHandle(phase Phase, handleType string, value any) *Error {
	return &Error{
		Phase:      phase,
		Kind:       KindInvalidHandle,
		HandleType: handleType,
		Value:      value,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Closed creates an error for operations on a closed provider
func Closed(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s closed", what),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
