package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the error shape every service returns to its route. It is
// JSON-serializable and knows the HTTP status it maps to.
type ErrorResponse interface {
	error
	Code() int
}

type simpleError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *simpleError) Error() string {
	return e.Message
}

func (e *simpleError) Code() int {
	return e.Status
}

func NewSimple(code int, message string) ErrorResponse {
	return &simpleError{Status: code, Message: message}
}

var (
	InternalServerError   = NewSimple(http.StatusInternalServerError, "Internal server error")
	MalformedBodyError    = NewSimple(http.StatusBadRequest, "Malformed request body")
	InvalidAuthTokenError = NewSimple(http.StatusUnauthorized, "Invalid or missing auth token")

	// NotFoundError covers three cases the caller cannot tell apart: the
	// row never existed, it is soft-deleted, or it belongs to another user.
	NotFoundError = NewSimple(http.StatusNotFound, "Resource not found")

	// VersionConflictError means the row changed since the caller read it;
	// re-fetch and retry.
	VersionConflictError = NewSimple(http.StatusConflict, "Resource was modified by another request")

	EndBeforeStartError        = NewSimple(http.StatusBadRequest, "End time must not be before start time")
	InvalidRecurrenceRuleError = NewSimple(http.StatusBadRequest, "Invalid recurrence rule")
	MissingLocationNameError   = NewSimple(http.StatusBadRequest, "Location requires at least one name")
	ScopeRequiresSeriesError   = NewSimple(http.StatusBadRequest, "Requested scope requires a recurring event")
	UnknownScopeError          = NewSimple(http.StatusBadRequest, "Unknown edit scope")
)

func NewMissingParamError(name string) ErrorResponse {
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("Missing required parameter '%s'", name))
}

// FromValidationError flattens a validator error into a 400 listing the
// offending fields.
func FromValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MalformedBodyError
	}

	fields := make([]string, len(verrs))
	for i, fe := range verrs {
		fields[i] = fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag())
	}
	return NewSimple(http.StatusBadRequest, "Validation failed: "+strings.Join(fields, ", "))
}
