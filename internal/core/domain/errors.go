package domain

import "errors"

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrTimeWindowNotFound  = errors.New("time window not found")
	ErrDayTemplateNotFound = errors.New("day template not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrDailyPlanNotFound   = errors.New("daily plan not found")

	// ErrForbidden covers an existing, active entity owned by another user.
	// Absence or a soft-deleted entity is reported as the not-found error first.
	ErrForbidden = errors.New("resource belongs to another user")

	ErrNameConflict     = errors.New("name already in use")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
	ErrCategoryMismatch = errors.New("task category does not match allocation category")
	ErrDailyPlanExists  = errors.New("daily plan already exists for this date")
	ErrAlreadyReviewed  = errors.New("daily plan is already reviewed")

	ErrDataMissing      = errors.New("required field is empty")
	ErrGenerationFailed = errors.New("text generation failed")
)
