package services

import (
	"errors"

	"creatorcrewz/internal/models"
	"creatorcrewz/internal/repositories"
	"creatorcrewz/pkg/apperrors"

	"gorm.io/gorm"
)

// txFunc runs fn in a transaction on db.
type txFunc func(db *gorm.DB, fn func(tx *gorm.DB) error) error

func gormTransaction(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.Transaction(fn)
}

// modelValidationError turns a model invariant violation into a 400.
func modelValidationError(err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidTalentStatus),
		errors.Is(err, models.ErrRateNotApplicable),
		errors.Is(err, models.ErrNegativeAmount),
		errors.Is(err, models.ErrInvalidJobType),
		errors.Is(err, models.ErrBudgetNotApplicable),
		errors.Is(err, models.ErrMissingTitle),
		errors.Is(err, models.ErrRatingOutOfRange),
		errors.Is(err, models.ErrSelfReview),
		errors.Is(err, models.ErrSelfMessage),
		errors.Is(err, models.ErrEmptyMessage):
		return apperrors.NewBadRequestError(err.Error())
	default:
		return nil
	}
}

// handleRepoError maps repository sentinels shared by several services.
func handleRepoError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	if vErr := modelValidationError(err); vErr != nil {
		return vErr
	}

	switch {
	case errors.Is(err, repositories.ErrUserNotFound):
		return apperrors.ErrUserNotFound
	case errors.Is(err, repositories.ErrJobNotFound):
		return apperrors.ErrJobNotFound
	case errors.Is(err, repositories.ErrApplicationNotFound):
		return apperrors.ErrApplicationNotFound
	case errors.Is(err, repositories.ErrProjectNotFound):
		return apperrors.ErrProjectNotFound
	case errors.Is(err, repositories.ErrApplicationAlreadyExists):
		return apperrors.ErrAlreadyApplied
	case errors.Is(err, repositories.ErrReviewAlreadyExists):
		return apperrors.ErrReviewAlreadyExists
	case errors.Is(err, repositories.ErrStatusConflict):
		return apperrors.ErrInvalidStatusTransition
	case errors.Is(err, repositories.ErrSavedJobMissing):
		return apperrors.ErrNotFound(err, "saved_job")
	default:
		return apperrors.InternalError(err)
	}
}
