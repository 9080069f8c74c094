package salaryerrors

import (
	"go-messbill/internal/shared/apperror"
	"net/http"
)

var (
	ErrSalaryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary record not found",
		http.StatusNotFound,
	)
	ErrSalaryAlreadyExists = apperror.New(
		apperror.CodeDuplicateKey,
		"Error: empCode already exists. Duplicate empCode is not allowed.",
		http.StatusOK,
	)
)
