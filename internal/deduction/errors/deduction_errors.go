package deductionerrors

import (
	"go-messbill/internal/shared/apperror"
	"net/http"
)

var (
	ErrDeductionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Deduction record not found",
		http.StatusNotFound,
	)
	ErrDeductionAlreadyExists = apperror.New(
		apperror.CodeDuplicateKey,
		"Deduction with this txnno already exists",
		http.StatusOK,
	)
)
