// Package errors provides structured error types for handle guards and the
// resource providers built on them.
//
// Errors are categorized by Phase (which guard operation was running) and
// Kind (error category). The Error type carries the handle's Go type, the
// offending handle value and the cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseRelease, errors.KindCallback).
//		HandleType("int").
//		Value(7).
//		Cause(cause).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.ReleaseFailed("int", 7, cause)
//	err := errors.NotFound(errors.PhaseLookup, "handle", "42")
//
// Failures raised by user callables are wrapped, never swallowed: errors.Is
// and errors.As reach the original cause through Unwrap.
package errors
