package apperror

import (
	"fmt"
	"net/http"
)

// Router fallbacks. Both answer 404; legacy clients treat an unknown method
// the same as an unknown path.
var (
	ErrRouteNotFound = New(
		CodeRouteNotFound,
		"Route not found",
		http.StatusNotFound,
	)

	ErrMethodNotAllowed = New(
		CodeRouteNotFound,
		"Method not allowed",
		http.StatusNotFound,
	)
)

func RequiredField(field string) *AppError {
	return New(CodeValidationError, fmt.Sprintf("%s is required", field), http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return New(CodeValidationError, fmt.Sprintf("%s is invalid", field), http.StatusBadRequest)
}

// InvalidInput builds a 400 with a caller supplied message.
func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message, http.StatusBadRequest)
}
