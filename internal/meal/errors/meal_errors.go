package mealerrors

import (
	"go-messbill/internal/shared/apperror"
	"net/http"
)

var (
	ErrMealNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found",
		http.StatusNotFound,
	)
	ErrMealAlreadyExists = apperror.New(
		apperror.CodeDuplicateKey,
		"Attendance record with this idno already exists",
		http.StatusOK,
	)
	ErrInvalidQueryParameter = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid query parameter. Only 'idno' or 'date' is allowed.",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"date must be formatted as YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
