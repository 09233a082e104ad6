package shiftsystem

import (
	"time"

	"github.com/cmlabs-hris/roster-backend-go/internal/pkg/validator"
)

type SystemType string

const (
	SystemTwoShift12h     SystemType = "two_shift_12h"    // two 12-hour shifts, 6-day rotation cycle
	SystemThreeShift8h    SystemType = "three_shift_8h"   // three 8-hour shifts tiling the full day
	SystemTwelveThirtySix SystemType = "twelve_thirtysix" // 12 hours on duty, 36 hours off
)

var SystemTypeValues = []string{
	string(SystemTwoShift12h),
	string(SystemThreeShift8h),
	string(SystemTwelveThirtySix),
}

type ShiftType string

const (
	ShiftDay     ShiftType = "day"
	ShiftEvening ShiftType = "evening"
	ShiftNight   ShiftType = "night"
	ShiftRest    ShiftType = "rest"
	ShiftLeave   ShiftType = "leave"
)

var ShiftTypeValues = []string{
	string(ShiftDay),
	string(ShiftEvening),
	string(ShiftNight),
	string(ShiftRest),
	string(ShiftLeave),
}

type ShiftSystem struct {
	ID                string
	ProjectID         string
	Name              string
	Type              SystemType
	PerShiftHeadcount int // guards required on each working shift
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Shifts []ShiftDefinition // ordered as configured
}

type ShiftDefinition struct {
	ID            string
	ShiftSystemID string
	Name          string
	Type          ShiftType
	StartHour     int // 0-23, shift start on the calendar day
	EndHour       int // exclusive; EndHour <= StartHour means the shift runs into the next day
	DurationHours int
	IsNight       bool
	BreakMinutes  int
	Position      int
}

// WorkingShifts returns the shift definitions in configured order. Rest and
// leave are derived states, never configured, so every definition is a
// working slot.
func (s ShiftSystem) WorkingShifts() []ShiftDefinition {
	return s.Shifts
}

// ShiftByType returns the definition for a shift type.
func (s ShiftSystem) ShiftByType(t ShiftType) (ShiftDefinition, bool) {
	for _, def := range s.Shifts {
		if def.Type == t {
			return def, true
		}
	}
	return ShiftDefinition{}, false
}

// MinimumHeadcount is the smallest roster the rotation can be planned for.
// The three-shift rotation needs one full crew per shift; the 12-hour and
// 12/36 systems have explicit degradations down to a single guard.
func (s ShiftSystem) MinimumHeadcount() int {
	if s.Type == SystemThreeShift8h {
		per := s.PerShiftHeadcount
		if per < 1 {
			per = 1
		}
		return 3 * per
	}
	return 1
}

// RequiredHeadcountPerShift is the coverage target the validator checks
// against for each working shift.
func (s ShiftSystem) RequiredHeadcountPerShift() int {
	if s.Type == SystemThreeShift8h && s.PerShiftHeadcount > 1 {
		return s.PerShiftHeadcount
	}
	return 1
}

// Validate checks the structural invariants of a configured system: every
// shift fits inside a day, and a three-shift system tiles 24 hours with no
// gap or overlap.
func (s ShiftSystem) Validate() error {
	if !validator.IsInSlice(string(s.Type), SystemTypeValues) {
		return ErrInvalidSystemType
	}
	if len(s.Shifts) == 0 {
		return ErrNoShiftDefinitions
	}

	for _, def := range s.Shifts {
		if def.DurationHours <= 0 || def.DurationHours*60+def.BreakMinutes > 24*60 {
			return ErrInvalidShiftDuration
		}
	}

	if s.Type == SystemThreeShift8h {
		total := 0
		for i, def := range s.Shifts {
			total += def.DurationHours
			next := s.Shifts[(i+1)%len(s.Shifts)]
			if (def.StartHour+def.DurationHours)%24 != next.StartHour {
				return ErrShiftsDoNotTile
			}
		}
		if total != 24 {
			return ErrShiftsDoNotTile
		}
	}

	return nil
}

// WindowOn resolves the concrete start/end timestamps of a shift on a
// calendar day. Shifts wrapping midnight end on the following day.
func (d ShiftDefinition) WindowOn(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), d.StartHour, 0, 0, 0, date.Location())
	end := start.Add(time.Duration(d.DurationHours) * time.Hour)
	return start, end
}
