package roster

import (
	"time"

	"github.com/cmlabs-hris/roster-backend-go/internal/domain/roster"
	"github.com/cmlabs-hris/roster-backend-go/internal/domain/shiftsystem"
)

// ValidateCoverage walks the finished month and flags every (day, shift)
// slot staffed below the system's required headcount. It never mutates the
// roster; the caller decides whether a month with gaps is acceptable.
func ValidateCoverage(system shiftsystem.ShiftSystem, assignments []roster.Assignment, year int, month time.Month) []roster.CoverageIssue {
	required := system.RequiredHeadcountPerShift()

	counts := make(map[int]map[shiftsystem.ShiftType]int)
	for _, a := range assignments {
		if !a.IsWorking() {
			continue
		}
		day := a.Date.Day()
		if counts[day] == nil {
			counts[day] = make(map[shiftsystem.ShiftType]int)
		}
		counts[day][a.ShiftType]++
	}

	var issues []roster.CoverageIssue
	days := daysInMonth(year, month)
	for day := 1; day <= days; day++ {
		for _, def := range system.WorkingShifts() {
			staffed := counts[day][def.Type]
			if staffed < required {
				issues = append(issues, roster.CoverageIssue{
					Date:         dateOf(year, month, day),
					ShiftType:    def.Type,
					MissingCount: required - staffed,
				})
			}
		}
	}

	return issues
}
