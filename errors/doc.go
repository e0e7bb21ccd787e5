// Package errors provides structured error types for the urprint library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: field path, detail message,
// and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindInvalidData).
//		Path("prop", "size").
//		Detail("declared size %d is not a number", raw).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(addr, length)
//	err := errors.ParseFailed(line, "unknown directive")
//
// All errors implement the standard error interface and support errors.Is/As.
//
// Note that render-time decode failures are not Go errors at all: the engine
// substitutes diagnostic text for the value it could not interpret. Only
// memory capture, capture parsing, and output sink failures surface here.
package errors
