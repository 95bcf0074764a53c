// Package errors defines the application errors of the diet service. Each carries
// the HTTP status and business code the delivery layer answers with.
package errors

import (
	"net/http"

	"dietplan/internal/errors"
)

// AppError is an error the delivery layer can render for clients.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string // e.g. "WEEKLY_DIET_NOT_FOUND"
	Message() string   // client-facing summary
	Details() string   // optional, never rendered for 5xx
}

// BaseError is an AppError identified by its business code.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message, details: details}
}

func newError(httpCode int, errorCode, message string) *BaseError {
	return NewBaseError(httpCode, errorCode, message, "")
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches on the business code, so copies made by WithDetails still match the
// predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails returns a copy carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	return NewBaseError(e.httpCode, e.errorCode, e.message, details)
}

// Lookup failures abort the current generation call; an empty catalog is never
// substituted for an unavailable one.
var (
	ErrCatalogUnavailable    = newError(http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE", "recipe catalog lookup failed")
	ErrExclusionLookupFailed = newError(http.StatusServiceUnavailable, "EXCLUSION_LOOKUP_FAILED", "disease exclusion lookup failed")
	ErrHistoryLookupFailed   = newError(http.StatusServiceUnavailable, "HISTORY_LOOKUP_FAILED", "recipe history lookup failed")
	ErrFruitLookupFailed     = newError(http.StatusServiceUnavailable, "FRUIT_LOOKUP_FAILED", "seasonal fruit lookup failed")
)

// Weekly diet storage and export.
var (
	ErrWeeklyDietNotFound       = newError(http.StatusNotFound, "WEEKLY_DIET_NOT_FOUND", "weekly diet not found")
	ErrWeeklyDietSaveFailed     = newError(http.StatusInternalServerError, "WEEKLY_DIET_SAVE_FAILED", "failed to save weekly diet")
	ErrShoppingListExportFailed = newError(http.StatusServiceUnavailable, "SHOPPING_LIST_EXPORT_FAILED", "failed to export shopping list")
)

var (
	ErrNoPlanGenerated  = newError(http.StatusUnprocessableEntity, "NO_PLAN_GENERATED", "no dish satisfies the given constraints")
	ErrValidationFailed = newError(http.StatusBadRequest, "VALIDATION_FAILED", "input validation failed")
)

// DatabaseExecuteError is a failed statement. The driver error stays reachable
// through Unwrap but is never shown to clients.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	if e.details == "" {
		return "database execution failed: " + e.err.Error()
	}

	return "database execution failed: " + e.details + ": " + e.err.Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
