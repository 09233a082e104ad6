package roster

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/roster-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/roster-backend-go/internal/domain/roster"
	"github.com/cmlabs-hris/roster-backend-go/internal/domain/shiftsystem"
	"github.com/google/uuid"
)

// PlanMonth computes the draft roster for a month: exactly one assignment
// per (employee, calendar day), before recorded leave is applied. Employees
// must be in stable registration order; each employee's rotation phase is
// derived from their position in the slice.
func PlanMonth(system shiftsystem.ShiftSystem, employees []employee.Employee, year int, month time.Month) ([]roster.Assignment, error) {
	if err := system.Validate(); err != nil {
		return nil, err
	}
	if len(employees) < system.MinimumHeadcount() {
		return nil, roster.ErrInsufficientPersonnel
	}

	switch system.Type {
	case shiftsystem.SystemTwoShift12h:
		return planTwoShift(system, employees, year, month)
	case shiftsystem.SystemThreeShift8h:
		return planThreeShift(system, employees, year, month)
	case shiftsystem.SystemTwelveThirtySix:
		return planTwelveThirtySix(system, employees, year, month)
	default:
		return nil, shiftsystem.ErrInvalidSystemType
	}
}

// planTwoShift staggers a 6-day work/work/night/night/rest/rest cycle, each
// employee starting two days later than the previous one. Rosters of one or
// two employees degrade to restless day/night alternation so the post can
// still be manned around the clock.
func planTwoShift(system shiftsystem.ShiftSystem, employees []employee.Employee, year int, month time.Month) ([]roster.Assignment, error) {
	dayDef, ok := system.ShiftByType(shiftsystem.ShiftDay)
	if !ok {
		return nil, fmt.Errorf("shift system %s: %w: missing day shift", system.ID, shiftsystem.ErrNoShiftDefinitions)
	}
	nightDef, ok := system.ShiftByType(shiftsystem.ShiftNight)
	if !ok {
		return nil, fmt.Errorf("shift system %s: %w: missing night shift", system.ID, shiftsystem.ErrNoShiftDefinitions)
	}

	days := daysInMonth(year, month)
	assignments := make([]roster.Assignment, 0, days*len(employees))

	for i, emp := range employees {
		for dayIdx := 0; dayIdx < days; dayIdx++ {
			date := dateOf(year, month, dayIdx+1)

			switch len(employees) {
			case 1:
				// A single guard covers every day, alternating by calendar
				// day number.
				def := nightDef
				if date.Day()%2 == 0 {
					def = dayDef
				}
				assignments = append(assignments, workingAssignment(emp, date, def))
			case 2:
				def := dayDef
				if (dayIdx+i)%2 != 0 {
					def = nightDef
				}
				assignments = append(assignments, workingAssignment(emp, date, def))
			default:
				// Phase offset 2*i: cycle days 0-1 day shift, 2-3 night
				// shift, 4-5 rest.
				switch pos := mod(dayIdx-2*i, 6); {
				case pos < 2:
					assignments = append(assignments, workingAssignment(emp, date, dayDef))
				case pos < 4:
					assignments = append(assignments, workingAssignment(emp, date, nightDef))
				default:
					assignments = append(assignments, restAssignment(emp, date))
				}
			}
		}
	}

	return assignments, nil
}

// planThreeShift rotates the roster through day/evening/night crews. Each
// day the employees are ranked by (ordinal + day index) mod roster size;
// the first 3*headcount ranks fill the shifts in configured order, the rest
// rest. The ranking shifts by one position per day, so rest days and night
// shifts rotate evenly through the whole roster.
func planThreeShift(system shiftsystem.ShiftSystem, employees []employee.Employee, year int, month time.Month) ([]roster.Assignment, error) {
	per := system.PerShiftHeadcount
	if per < 1 {
		per = 1
	}
	required := 3 * per

	days := daysInMonth(year, month)
	assignments := make([]roster.Assignment, 0, days*len(employees))

	for i, emp := range employees {
		for dayIdx := 0; dayIdx < days; dayIdx++ {
			date := dateOf(year, month, dayIdx+1)

			rank := mod(i+dayIdx, len(employees))
			if rank < required {
				def := system.Shifts[rank/per]
				assignments = append(assignments, workingAssignment(emp, date, def))
			} else {
				assignments = append(assignments, restAssignment(emp, date))
			}
		}
	}

	return assignments, nil
}

// planTwelveThirtySix runs each employee on a personal 48-hour cycle (12 on,
// 36 off) offset by 12 hours per ordinal index. A calendar day overlaps the
// on-duty window only when the cycle position at midnight is 0 (first half
// of the day) or 36 (second half).
func planTwelveThirtySix(system shiftsystem.ShiftSystem, employees []employee.Employee, year int, month time.Month) ([]roster.Assignment, error) {
	dayDef, ok := system.ShiftByType(shiftsystem.ShiftDay)
	if !ok {
		return nil, fmt.Errorf("shift system %s: %w: missing day shift", system.ID, shiftsystem.ErrNoShiftDefinitions)
	}
	nightDef, ok := system.ShiftByType(shiftsystem.ShiftNight)
	if !ok {
		return nil, fmt.Errorf("shift system %s: %w: missing night shift", system.ID, shiftsystem.ErrNoShiftDefinitions)
	}

	days := daysInMonth(year, month)
	assignments := make([]roster.Assignment, 0, days*len(employees))

	for i, emp := range employees {
		for dayIdx := 0; dayIdx < days; dayIdx++ {
			date := dateOf(year, month, dayIdx+1)

			switch mod(24*dayIdx-12*i, 48) {
			case 0:
				assignments = append(assignments, workingAssignment(emp, date, dayDef))
			case 36:
				assignments = append(assignments, workingAssignment(emp, date, nightDef))
			default:
				assignments = append(assignments, restAssignment(emp, date))
			}
		}
	}

	return assignments, nil
}

func workingAssignment(emp employee.Employee, date time.Time, def shiftsystem.ShiftDefinition) roster.Assignment {
	start, end := def.WindowOn(date)
	return roster.Assignment{
		ID:          newAssignmentID(emp.ProjectID, emp.ID, date),
		ProjectID:   emp.ProjectID,
		EmployeeID:  emp.ID,
		Date:        date,
		ShiftType:   def.Type,
		StartTime:   start,
		EndTime:     end,
		WorkedHours: float64(def.DurationHours),
		IsWeekend:   isWeekend(date),
	}
}

func restAssignment(emp employee.Employee, date time.Time) roster.Assignment {
	return roster.Assignment{
		ID:         newAssignmentID(emp.ProjectID, emp.ID, date),
		ProjectID:  emp.ProjectID,
		EmployeeID: emp.ID,
		Date:       date,
		ShiftType:  shiftsystem.ShiftRest,
		StartTime:  date,
		EndTime:    date,
		IsWeekend:  isWeekend(date),
	}
}

// newAssignmentID derives a stable id from the (project, employee, date)
// key, so identical inputs regenerate identical rosters.
func newAssignmentID(projectID, employeeID string, date time.Time) string {
	key := projectID + "/" + employeeID + "/" + date.Format("2006-01-02")
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func dateOf(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
