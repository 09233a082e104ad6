package roster

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/roster-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/roster-backend-go/internal/domain/shiftsystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCoverage_FullMonth(t *testing.T) {
	assignments, err := PlanMonth(twoShiftSystem(), makeEmployees(3), 2025, time.June)
	require.NoError(t, err)

	issues := ValidateCoverage(twoShiftSystem(), assignments, 2025, time.June)
	assert.Empty(t, issues)
}

func TestValidateCoverage_MissingNightGuard(t *testing.T) {
	assignments, err := PlanMonth(twoShiftSystem(), makeEmployees(3), 2025, time.June)
	require.NoError(t, err)

	gapDate := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	kept := assignments[:0]
	for _, a := range assignments {
		if a.Date.Equal(gapDate) && a.ShiftType == shiftsystem.ShiftNight {
			continue
		}
		kept = append(kept, a)
	}

	issues := ValidateCoverage(twoShiftSystem(), kept, 2025, time.June)
	require.Len(t, issues, 1)
	assert.Equal(t, gapDate, issues[0].Date)
	assert.Equal(t, shiftsystem.ShiftNight, issues[0].ShiftType)
	assert.Equal(t, 1, issues[0].MissingCount)
}

func TestValidateCoverage_LeaveDoesNotCount(t *testing.T) {
	assignments, err := PlanMonth(twoShiftSystem(), makeEmployees(3), 2025, time.June)
	require.NoError(t, err)

	// Collapse one working day to leave; the slot must show up as a gap.
	code := leave.CodeAnnual
	for i := range assignments {
		if assignments[i].Date.Day() == 5 && assignments[i].ShiftType == shiftsystem.ShiftDay {
			assignments[i].ShiftType = shiftsystem.ShiftLeave
			assignments[i].LeaveCode = &code
			assignments[i].WorkedHours = 0
			break
		}
	}

	issues := ValidateCoverage(twoShiftSystem(), assignments, 2025, time.June)
	require.Len(t, issues, 1)
	assert.Equal(t, 5, issues[0].Date.Day())
	assert.Equal(t, shiftsystem.ShiftDay, issues[0].ShiftType)
}

func TestValidateCoverage_ThreeShiftHeadcount(t *testing.T) {
	system := threeShiftSystem()
	system.PerShiftHeadcount = 2

	assignments, err := PlanMonth(system, makeEmployees(6), 2025, time.June)
	require.NoError(t, err)

	issues := ValidateCoverage(system, assignments, 2025, time.June)
	assert.Empty(t, issues)
}

func TestValidateCoverage_EmptyMonth(t *testing.T) {
	system := twoShiftSystem()

	issues := ValidateCoverage(system, nil, 2025, time.June)

	// 30 days times two uncovered shifts.
	assert.Len(t, issues, 60)
	for _, issue := range issues {
		assert.Equal(t, 1, issue.MissingCount)
	}
}
