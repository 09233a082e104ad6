package roster

import (
	"math"
	"sort"

	"github.com/cmlabs-hris/roster-backend-go/internal/domain/roster"
)

// OvertimeConfig carries the legal and pricing constants for the summary.
type OvertimeConfig struct {
	LegalMonthlyHours    float64
	StandardShiftHours   float64
	SubstituteHourlyRate float64
}

// SummarizeOvertime sums each employee's worked hours over the month and
// derives the legal-overtime exposure: excess hours over the monthly
// threshold, the substitute hours/days needed to absorb them, and a cost
// estimate. Leave and rest days contribute nothing. The summary is
// advisory; committing a substitute is a separate approval step.
func SummarizeOvertime(assignments []roster.Assignment, names map[string]string, cfg OvertimeConfig) []roster.OvertimeSummary {
	type acc struct {
		worked       float64
		isSubstitute bool
	}
	totals := make(map[string]*acc)
	var order []string

	for _, a := range assignments {
		t, ok := totals[a.EmployeeID]
		if !ok {
			t = &acc{}
			totals[a.EmployeeID] = t
			order = append(order, a.EmployeeID)
		}
		if a.IsSubstitute {
			t.isSubstitute = true
		}
		if a.IsWorking() {
			t.worked += a.WorkedHours
		}
	}

	sort.Strings(order)

	summaries := make([]roster.OvertimeSummary, 0, len(order))
	for _, id := range order {
		t := totals[id]
		excess := t.worked - cfg.LegalMonthlyHours
		if excess < 0 {
			excess = 0
		}
		var days float64
		if cfg.StandardShiftHours > 0 {
			days = round1(excess / cfg.StandardShiftHours)
		}
		summaries = append(summaries, roster.OvertimeSummary{
			EmployeeID:              id,
			EmployeeName:            names[id],
			IsSubstitute:            t.isSubstitute,
			WorkedHours:             t.worked,
			LegalMonthlyHours:       cfg.LegalMonthlyHours,
			ExcessHours:             excess,
			RequiredSubstituteHours: excess,
			RequiredSubstituteDays:  days,
			EstimatedCost:           excess * cfg.SubstituteHourlyRate,
		})
	}

	return summaries
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
