package roster

import (
	"time"

	"github.com/cmlabs-hris/roster-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/roster-backend-go/internal/domain/shiftsystem"
)

// Assignment is the atomic output of a generation run. The roster holds
// exactly one Assignment per (employee, date); a missing day or a
// double-booking is a correctness bug, not a degraded result.
type Assignment struct {
	ID          string
	ProjectID   string
	EmployeeID  string
	Date        time.Time // normalized to midnight
	ShiftType   shiftsystem.ShiftType
	StartTime   time.Time
	EndTime     time.Time
	WorkedHours float64
	IsWeekend   bool

	IsSubstitute       bool
	OriginalEmployeeID *string
	OriginalShiftType  *shiftsystem.ShiftType

	LeaveCode *leave.Code
	IsHoliday bool

	Notes string
}

// IsWorking reports whether the assignment contributes to shift coverage
// and worked hours. Rest days and leave days do not.
func (a Assignment) IsWorking() bool {
	return a.LeaveCode == nil &&
		a.ShiftType != shiftsystem.ShiftRest &&
		a.ShiftType != shiftsystem.ShiftLeave
}

// CoverageIssue flags a (day, shift) slot with fewer active assignments
// than the shift system requires.
type CoverageIssue struct {
	Date         time.Time
	ShiftType    shiftsystem.ShiftType
	MissingCount int
}

// OvertimeSummary is derived from a finished month and recomputed on
// demand; the engine never persists it.
type OvertimeSummary struct {
	EmployeeID              string
	EmployeeName            string
	IsSubstitute            bool
	WorkedHours             float64
	LegalMonthlyHours       float64
	ExcessHours             float64
	RequiredSubstituteHours float64
	RequiredSubstituteDays  float64
	EstimatedCost           float64
}
