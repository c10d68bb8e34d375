package models

import "errors"

var (
	ErrInvalidRole         = errors.New("role must be creator or talent")
	ErrInvalidTalentStatus = errors.New("talent status must be one_off, long_term or both")
	ErrRateNotApplicable   = errors.New("rate only applies to talent offering one-off services")
	ErrNegativeAmount      = errors.New("amount cannot be negative")
	ErrInvalidJobType      = errors.New("job type must be one_off or long_term")
	ErrBudgetNotApplicable = errors.New("budget only applies to one-off jobs")
	ErrMissingTitle        = errors.New("title is required")
	ErrRatingOutOfRange    = errors.New("rating must be between 1 and 5")
	ErrSelfReview          = errors.New("cannot review yourself")
	ErrSelfMessage         = errors.New("cannot message yourself")
	ErrEmptyMessage        = errors.New("message content is required")
)
