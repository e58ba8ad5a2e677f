// Package errors provides structured error types for tentapress.
package errors

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Code represents a unique error code.
type Code string

// Error codes for tentapress.
const (
	// Export errors
	CodeExportInit Code = "EXPORT_INIT_FAILED"

	// Database errors
	CodeDBUnavailable Code = "DB_UNAVAILABLE"

	// Config errors
	CodeConfigInvalid Code = "CONFIG_INVALID"
	CodeConfigMissing Code = "CONFIG_MISSING"
)

// Category groups error codes for HTTP status mapping.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryNotFound
	CategoryBadRequest
	CategoryInternal
	CategoryUnavailable
)

// codeCategories maps error codes to their categories.
var codeCategories = map[Code]Category{
	CodeExportInit:    CategoryInternal,
	CodeDBUnavailable: CategoryUnavailable,
	CodeConfigInvalid: CategoryBadRequest,
	CodeConfigMissing: CategoryBadRequest,
}

// HTTPStatus returns the HTTP status code for a category.
func (c Category) HTTPStatus() int {
	switch c {
	case CategoryNotFound:
		return 404
	case CategoryBadRequest:
		return 400
	case CategoryUnavailable:
		return 503
	default:
		return 500
	}
}

// TPError is the structured error type for tentapress.
type TPError struct {
	Code  Code   `json:"code"`
	What  string `json:"what"`
	Why   string `json:"why,omitempty"`
	Fix   string `json:"fix,omitempty"`
	Cause error  `json:"-"`
}

// Error implements the error interface.
func (e *TPError) Error() string {
	var b strings.Builder
	b.WriteString(e.What)
	if e.Why != "" {
		b.WriteString(": ")
		b.WriteString(e.Why)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *TPError) Unwrap() error {
	return e.Cause
}

// UserMessage returns a user-friendly message for CLI output.
func (e *TPError) UserMessage() string {
	var b strings.Builder
	b.WriteString("Error: ")
	b.WriteString(e.What)
	if e.Why != "" {
		b.WriteString("\n\nWhy: ")
		b.WriteString(e.Why)
	}
	if e.Fix != "" {
		b.WriteString("\n\nFix: ")
		b.WriteString(e.Fix)
	}
	return b.String()
}

// Category returns the error category for HTTP status mapping.
func (e *TPError) Category() Category {
	if cat, ok := codeCategories[e.Code]; ok {
		return cat
	}
	return CategoryUnknown
}

// HTTPStatus returns the appropriate HTTP status code for this error.
func (e *TPError) HTTPStatus() int {
	return e.Category().HTTPStatus()
}

// MarshalJSON implements json.Marshaler.
func (e *TPError) MarshalJSON() ([]byte, error) {
	type alias TPError
	aux := struct {
		*alias
		CauseMsg string `json:"cause,omitempty"`
	}{
		alias: (*alias)(e),
	}
	if e.Cause != nil {
		aux.CauseMsg = e.Cause.Error()
	}
	return json.Marshal(aux)
}

// Is reports whether target is a TPError with the same code.
func (e *TPError) Is(target error) bool {
	t, ok := target.(*TPError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithCause returns a copy of the error with the given cause.
func (e *TPError) WithCause(err error) *TPError {
	return &TPError{
		Code:  e.Code,
		What:  e.What,
		Why:   e.Why,
		Fix:   e.Fix,
		Cause: err,
	}
}

// --- Error constructors ---

// ErrExportInit returns the fatal error for a container that cannot be
// created or opened for writing. This is the only error that aborts an
// export.
func ErrExportInit(path string, cause error) *TPError {
	return &TPError{
		Code:  CodeExportInit,
		What:  "export archive could not be created",
		Why:   fmt.Sprintf("Failed to open %s for writing", path),
		Fix:   "Check that the temp directory exists and is writable",
		Cause: cause,
	}
}

// ErrDBUnavailable returns an error for an unreachable database.
func ErrDBUnavailable(cause error) *TPError {
	return &TPError{
		Code:  CodeDBUnavailable,
		What:  "database is unavailable",
		Why:   "The tentapress database could not be opened",
		Fix:   "Check the database path or DSN in tentapress.yaml",
		Cause: cause,
	}
}

// ErrConfigInvalid returns an error for a malformed config file.
func ErrConfigInvalid(path string, cause error) *TPError {
	return &TPError{
		Code:  CodeConfigInvalid,
		What:  "configuration is invalid",
		Why:   fmt.Sprintf("Failed to parse %s", path),
		Fix:   "Fix the YAML syntax errors in the config file",
		Cause: cause,
	}
}
