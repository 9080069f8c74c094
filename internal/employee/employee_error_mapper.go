package employee

import (
	"errors"

	employeeerrors "go-messbill/internal/employee/errors"
	"go-messbill/internal/recordstore"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, recordstore.ErrNotFound):
		return employeeerrors.ErrEmployeeNotFound
	case errors.Is(err, recordstore.ErrConditionFailed):
		return employeeerrors.ErrEmployeeAlreadyExists
	}

	return err
}
