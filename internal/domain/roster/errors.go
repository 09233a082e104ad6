package roster

import "errors"

var (
	// Fatal generation errors
	ErrMissingShiftSystem    = errors.New("no shift system supplied for generation")
	ErrInsufficientPersonnel = errors.New("roster is smaller than the shift system's minimum headcount")
	ErrDuplicateAssignment   = errors.New("duplicate assignment for employee and date")
	ErrMonthNotGenerated     = errors.New("no assignments generated for this month")

	// Validation errors
	ErrInvalidRequestData = errors.New("invalid request data")
)
