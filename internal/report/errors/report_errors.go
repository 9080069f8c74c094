package reporterrors

import (
	"go-messbill/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid report period. Use month 1-12, a four digit year and date YYYY-MM-DD.",
		http.StatusBadRequest,
	)
	ErrInvalidSortColumn = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid sort column",
		http.StatusBadRequest,
	)
	ErrUnsupportedFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Unsupported export format. Use xlsx or pdf.",
		http.StatusBadRequest,
	)
)
