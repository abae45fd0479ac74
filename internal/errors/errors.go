package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// Configuration errors - missing or invalid configuration, fatal before any network call
	ErrorTypeConfig ErrorType = iota
	// Search errors - a single search query failed; the run continues with the remaining queries
	ErrorTypeSearch
	// Enrichment errors - a secondary lookup failed; the caller substitutes a conservative default
	ErrorTypeEnrichment
	// Write errors - the spreadsheet write failed; fatal, the destination state is unknown
	ErrorTypeWrite
)

// Error represents a structured error with context
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error type
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// IsFatal returns true if this error should stop the run
func (e *Error) IsFatal() bool {
	return e.Type == ErrorTypeConfig || e.Type == ErrorTypeWrite
}

// New creates a new error with the given type and message
func New(errType ErrorType, message string) *Error {
	return &Error{Type: errType, Message: message}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, errType ErrorType, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Type: errType, Message: message, Cause: err}
}

// Convenience constructors for the error taxonomy

// ConfigError creates a configuration error
func ConfigError(message string) *Error {
	return New(ErrorTypeConfig, message)
}

// ConfigErrorf creates a configuration error with formatting
func ConfigErrorf(format string, args ...interface{}) *Error {
	return New(ErrorTypeConfig, fmt.Sprintf(format, args...))
}

// SearchError wraps a failed search request
func SearchError(err error, message string) *Error {
	return Wrap(err, ErrorTypeSearch, message)
}

// EnrichmentError wraps a failed enrichment lookup
func EnrichmentError(err error, message string) *Error {
	return Wrap(err, ErrorTypeEnrichment, message)
}

// WriteError wraps a failed spreadsheet write
func WriteError(err error, message string) *Error {
	return Wrap(err, ErrorTypeWrite, message)
}

// IsSearch reports whether err is a transient search error
func IsSearch(err error) bool {
	if err == nil {
		return false
	}
	return GetType(err) == ErrorTypeSearch
}

// IsFatal checks if an error is fatal (should stop the run)
func IsFatal(err error) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.IsFatal()
	}
	return false
}

// GetType returns the type of an error, unwrapping as needed
func GetType(err error) ErrorType {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type
	}
	return ErrorTypeEnrichment
}
