package employeeerrors

import (
	"go-messbill/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found.",
		http.StatusNotFound,
	)
	// Duplicates answer 200 so existing clients keep reading the message.
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeDuplicateKey,
		"Employee with this empCode already exists",
		http.StatusOK,
	)
	ErrInvalidQueryParameter = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid query parameter. Only 'empCode' is allowed.",
		http.StatusBadRequest,
	)
)
