package meal

import (
	"errors"

	"go-messbill/internal/recordstore"
	mealerrors "go-messbill/internal/meal/errors"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, recordstore.ErrNotFound) {
		return mealerrors.ErrMealNotFound
	}
	if errors.Is(err, recordstore.ErrConditionFailed) {
		return mealerrors.ErrMealAlreadyExists
	}

	return err
}
