package deduction

import (
	"errors"

	deductionerrors "go-messbill/internal/deduction/errors"
	"go-messbill/internal/recordstore"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, recordstore.ErrNotFound):
		return deductionerrors.ErrDeductionNotFound
	case errors.Is(err, recordstore.ErrConditionFailed):
		return deductionerrors.ErrDeductionAlreadyExists
	}

	return err
}
