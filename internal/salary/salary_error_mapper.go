package salary

import (
	"errors"

	"go-messbill/internal/recordstore"
	salaryerrors "go-messbill/internal/salary/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, recordstore.ErrNotFound) {
		return salaryerrors.ErrSalaryNotFound
	}
	if errors.Is(err, recordstore.ErrConditionFailed) {
		return salaryerrors.ErrSalaryAlreadyExists
	}

	return err
}
