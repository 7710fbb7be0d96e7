package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

// APIError carries the single human-readable `error` string that
// every failed request responds with.
type APIError struct {
	Message string `json:"error"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

var (
	MalformedBodyError  = NewSimple(http.StatusBadRequest, "Malformed JSON body")
	InternalServerError = NewSimple(http.StatusInternalServerError, "Something went wrong!")

	InvalidAPIKeyError = NewSimple(http.StatusUnauthorized, "Invalid or missing API key")

	UserNotFoundError = NewSimple(http.StatusNotFound, "User not found")
	NoteNotFoundError = NewSimple(http.StatusNotFound, "Note not found")

	InvalidUsernameError = NewSimple(http.StatusBadRequest,
		"Username must be 3-20 characters of letters, numbers or underscores")
	EmptyContentError    = NewSimple(http.StatusBadRequest, "Note content cannot be empty")
	ConfirmRequiredError = NewSimple(http.StatusBadRequest, "Deletion requires confirm=true")
)

// FromValidationError flattens the first field violation into the single
// error string the API contract allows.
func FromValidationError(err error) *APIError {
	var ve validator.ValidationErrors
	if ok := errors.As(err, &ve); !ok || len(ve) == 0 {
		return MalformedBodyError
	}

	fe := ve[0]
	switch fe.Field() {
	case "Username":
		return InvalidUsernameError
	case "Content":
		if fe.Tag() == "max" {
			return NewContentTooLongError(fe.Param())
		}
		return EmptyContentError
	default:
		return NewSimple(http.StatusBadRequest, "Invalid value for field '%s'", fe.Field())
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewContentTooLongError(max string) *APIError {
	return NewSimple(http.StatusBadRequest, "Note content cannot exceed %s characters", max)
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}
