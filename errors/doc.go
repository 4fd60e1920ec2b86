// Package errors provides structured error types for the renderdoc-go binding.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes binding context: library file name,
// exported symbol, requested API revision, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseNegotiate, errors.KindIncompatibleVersion).
//		Requested("1.1.0").
//		Detail("status %d", status).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.LibraryUnavailable("librenderdoc.so", cause)
//	err := errors.IncompatibleVersion("1.1.0", status)
//
// All errors implement the standard error interface and support errors.Is/As.
// Misuse errors are never returned; they are panic values, because the wrapped
// library treats argument misuse as undefined behavior.
package errors
