package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/roster-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/roster-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/roster-backend-go/internal/domain/roster"
	"github.com/cmlabs-hris/roster-backend-go/internal/domain/shiftsystem"
	"github.com/cmlabs-hris/roster-backend-go/internal/domain/substitute"
	"github.com/cmlabs-hris/roster-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Roster generation errors
	case errors.Is(err, roster.ErrMissingShiftSystem):
		BadRequest(w, "Project has no shift system configured", nil)
	case errors.Is(err, roster.ErrInsufficientPersonnel):
		BadRequest(w, "Not enough active personnel for the shift system", nil)
	case errors.Is(err, roster.ErrDuplicateAssignment):
		Conflict(w, "Duplicate assignment for employee and date")
	case errors.Is(err, roster.ErrMonthNotGenerated):
		NotFound(w, "Roster has not been generated for this month")
	case errors.Is(err, roster.ErrInvalidRequestData):
		BadRequest(w, "Invalid request data", nil)

	// Shift system errors
	case errors.Is(err, shiftsystem.ErrShiftSystemNotFound):
		NotFound(w, "Shift system not found")
	case errors.Is(err, shiftsystem.ErrNoShiftDefinitions):
		BadRequest(w, "Shift system has no shift definitions", nil)
	case errors.Is(err, shiftsystem.ErrInvalidSystemType):
		BadRequest(w, "Invalid shift system type", nil)
	case errors.Is(err, shiftsystem.ErrInvalidShiftDuration):
		BadRequest(w, "Shift duration plus break exceeds 24 hours", nil)
	case errors.Is(err, shiftsystem.ErrShiftsDoNotTile):
		BadRequest(w, "Three-shift definitions must tile 24 hours", nil)

	// Personnel errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmptyRoster):
		BadRequest(w, "Project has no active employees", nil)

	// Leave errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "No leave recorded for this employee and date")
	case errors.Is(err, leave.ErrInvalidLeaveCode):
		BadRequest(w, "Invalid leave code", nil)

	// Substitute errors
	case errors.Is(err, substitute.ErrSubstituteNotFound):
		NotFound(w, "Substitute not found")
	case errors.Is(err, substitute.ErrNationalIDRequired):
		BadRequest(w, "Substitute national id is required", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
