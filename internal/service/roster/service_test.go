package roster

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/roster-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/roster-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/roster-backend-go/internal/domain/roster"
	"github.com/cmlabs-hris/roster-backend-go/internal/domain/shiftsystem"
	"github.com/cmlabs-hris/roster-backend-go/internal/domain/substitute"
	"github.com/cmlabs-hris/roster-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== IN-MEMORY FAKES =====

type fakeShiftSystemRepo struct {
	systems map[string]shiftsystem.ShiftSystem
}

func (f *fakeShiftSystemRepo) GetByID(_ context.Context, id string, projectID string) (shiftsystem.ShiftSystem, error) {
	s, ok := f.systems[id]
	if !ok || s.ProjectID != projectID {
		return shiftsystem.ShiftSystem{}, shiftsystem.ErrShiftSystemNotFound
	}
	return s, nil
}

func (f *fakeShiftSystemRepo) GetByProjectID(_ context.Context, projectID string) ([]shiftsystem.ShiftSystem, error) {
	var out []shiftsystem.ShiftSystem
	for _, s := range f.systems {
		if s.ProjectID == projectID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShiftSystemRepo) ListAll(_ context.Context) ([]shiftsystem.ShiftSystem, error) {
	var out []shiftsystem.ShiftSystem
	for _, s := range f.systems {
		out = append(out, s)
	}
	return out, nil
}

type fakePersonnelStore struct {
	employees []employee.Employee
}

func (f *fakePersonnelStore) ListActive(_ context.Context, projectID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.ProjectID == projectID && e.IsActive {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakePersonnelStore) GetByID(_ context.Context, id string, projectID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id && e.ProjectID == projectID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

type fakeLeaveStore struct {
	records []leave.LeaveRecord
}

func (f *fakeLeaveStore) GetLeave(_ context.Context, employeeID string, date time.Time) (*leave.LeaveRecord, error) {
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.Date.Equal(date) {
			r := rec
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeLeaveStore) ListForMonth(_ context.Context, _ string, year int, month time.Month) ([]leave.LeaveRecord, error) {
	var out []leave.LeaveRecord
	for _, rec := range f.records {
		if rec.Date.Year() == year && rec.Date.Month() == month {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeSubstituteStore struct {
	subs    []substitute.Substitute
	upserts int
}

// FindActive returns the oldest registered substitute, matching the
// store's registration ordering.
func (f *fakeSubstituteStore) FindActive(_ context.Context, projectID string) (*substitute.Substitute, error) {
	for _, s := range f.subs {
		if s.ProjectID == projectID && s.IsActive {
			sub := s
			return &sub, nil
		}
	}
	return nil, nil
}

func (f *fakeSubstituteStore) Upsert(_ context.Context, sub substitute.Substitute) (substitute.Substitute, error) {
	f.upserts++
	for i, existing := range f.subs {
		if existing.ProjectID == sub.ProjectID && existing.NationalID == sub.NationalID {
			sub.ID = existing.ID
			f.subs[i] = sub
			return sub, nil
		}
	}
	sub.ID = "sub-" + sub.NationalID
	f.subs = append(f.subs, sub)
	return sub, nil
}

type fakeAssignmentRepo struct {
	months      map[string][]roster.Assignment
	failReplace bool
}

func monthKey(projectID string, year int, month time.Month) string {
	return fmt.Sprintf("%s:%04d-%02d", projectID, year, month)
}

func (f *fakeAssignmentRepo) ReplaceMonth(_ context.Context, projectID string, year int, month time.Month, assignments []roster.Assignment) error {
	if f.failReplace {
		return errors.New("storage unavailable")
	}
	if f.months == nil {
		f.months = make(map[string][]roster.Assignment)
	}
	stored := make([]roster.Assignment, len(assignments))
	copy(stored, assignments)
	f.months[monthKey(projectID, year, month)] = stored
	return nil
}

func (f *fakeAssignmentRepo) GetMonth(_ context.Context, projectID string, year int, month time.Month) ([]roster.Assignment, error) {
	return f.months[monthKey(projectID, year, month)], nil
}

type serviceFixture struct {
	systems     *fakeShiftSystemRepo
	personnel   *fakePersonnelStore
	leaves      *fakeLeaveStore
	substitutes *fakeSubstituteStore
	assignments *fakeAssignmentRepo
	service     roster.Service
}

func newServiceFixture(system shiftsystem.ShiftSystem, employees []employee.Employee) *serviceFixture {
	f := &serviceFixture{
		systems:     &fakeShiftSystemRepo{systems: map[string]shiftsystem.ShiftSystem{system.ID: system}},
		personnel:   &fakePersonnelStore{employees: employees},
		leaves:      &fakeLeaveStore{},
		substitutes: &fakeSubstituteStore{},
		assignments: &fakeAssignmentRepo{},
	}
	f.service = NewRosterService(f.systems, f.personnel, f.leaves, f.substitutes, f.assignments, Config{
		LegalMonthlyHours:    195,
		StandardShiftHours:   8,
		SubstituteHourlyRate: 50,
	})
	return f
}

func generateRequest() roster.GenerateRequest {
	return roster.GenerateRequest{
		ProjectID:     testProjectID,
		Year:          2025,
		Month:         6,
		ShiftSystemID: "sys-two-shift",
	}
}

// ===== SERVICE TESTS =====

func TestGenerate_Success(t *testing.T) {
	f := newServiceFixture(twoShiftSystem(), makeEmployees(3))

	result, err := f.service.Generate(context.Background(), generateRequest())
	require.NoError(t, err)

	assert.Len(t, result.Assignments, 90)
	assert.Empty(t, result.CoverageIssues)
	assert.Len(t, result.OvertimeSummaries, 3)

	// Each guard works 20 twelve-hour shifts in June: 240 worked, 45 over
	// the legal 195.
	for _, s := range result.OvertimeSummaries {
		assert.Equal(t, float64(240), s.WorkedHours)
		assert.Equal(t, float64(45), s.ExcessHours)
		assert.Equal(t, 5.6, s.RequiredSubstituteDays)
		assert.Equal(t, float64(2250), s.EstimatedCost)
	}

	stored, err := f.service.GetMonth(context.Background(), testProjectID, 2025, time.June)
	require.NoError(t, err)
	assert.Equal(t, result.Assignments, stored)
}

func TestGenerate_Regenerate_Idempotent(t *testing.T) {
	f := newServiceFixture(twoShiftSystem(), makeEmployees(3))

	first, err := f.service.Generate(context.Background(), generateRequest())
	require.NoError(t, err)
	second, err := f.service.Generate(context.Background(), generateRequest())
	require.NoError(t, err)

	assert.Equal(t, first.Assignments, second.Assignments)
}

func TestGenerate_LeaveWithoutSubstitute(t *testing.T) {
	f := newServiceFixture(twoShiftSystem(), makeEmployees(1))
	leaveDate := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	f.leaves.records = []leave.LeaveRecord{
		{ID: "lv-1", EmployeeID: "emp-01", Date: leaveDate, Code: leave.CodeAnnual, Paid: true},
	}

	result, err := f.service.Generate(context.Background(), generateRequest())
	require.NoError(t, err)

	var leaveDay *roster.Assignment
	for i := range result.Assignments {
		if result.Assignments[i].Date.Equal(leaveDate) {
			leaveDay = &result.Assignments[i]
		}
	}
	require.NotNil(t, leaveDay)
	assert.Equal(t, shiftsystem.ShiftLeave, leaveDay.ShiftType)
	require.NotNil(t, leaveDay.LeaveCode)
	assert.Equal(t, leave.CodeAnnual, *leaveDay.LeaveCode)
	assert.True(t, leaveDay.IsHoliday)
	assert.Zero(t, leaveDay.WorkedHours)
	require.NotNil(t, leaveDay.OriginalShiftType)
	assert.Equal(t, shiftsystem.ShiftDay, *leaveDay.OriginalShiftType) // day 10 is an even calendar day

	// A lone guard always leaves the opposite shift open, one structural gap
	// per day. The uncovered leave adds a second gap on day 10.
	assert.Len(t, result.CoverageIssues, 31)
	var dayTenGaps []shiftsystem.ShiftType
	for _, issue := range result.CoverageIssues {
		if issue.Date.Equal(leaveDate) {
			dayTenGaps = append(dayTenGaps, issue.ShiftType)
		}
	}
	assert.ElementsMatch(t, []shiftsystem.ShiftType{shiftsystem.ShiftDay, shiftsystem.ShiftNight}, dayTenGaps)
}

func TestGenerate_ExternalDutyIsNotHoliday(t *testing.T) {
	f := newServiceFixture(twoShiftSystem(), makeEmployees(1))
	dutyDate := time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC)
	f.leaves.records = []leave.LeaveRecord{
		{ID: "lv-1", EmployeeID: "emp-01", Date: dutyDate, Code: leave.CodeExternalDuty, Paid: true},
	}

	result, err := f.service.Generate(context.Background(), generateRequest())
	require.NoError(t, err)

	for _, a := range result.Assignments {
		if a.Date.Equal(dutyDate) {
			assert.False(t, a.IsHoliday)
			require.NotNil(t, a.LeaveCode)
			assert.Equal(t, leave.CodeExternalDuty, *a.LeaveCode)
		}
	}
}

func TestGenerate_SubstituteCoversLeave(t *testing.T) {
	f := newServiceFixture(twoShiftSystem(), makeEmployees(3))
	leaveDate := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	// emp-01 holds the day shift on June 1 in the three-guard rotation.
	f.leaves.records = []leave.LeaveRecord{
		{ID: "lv-1", EmployeeID: "emp-01", Date: leaveDate, Code: leave.CodeMedical, Paid: true},
	}

	req := generateRequest()
	req.Substitute = &roster.SubstituteInput{
		Name:       "Reserve Guard",
		NationalID: "1234567890123456",
	}

	result, err := f.service.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, f.substitutes.upserts)
	assert.Empty(t, result.CoverageIssues)

	var cover *roster.Assignment
	for i := range result.Assignments {
		if result.Assignments[i].IsSubstitute {
			require.Nil(t, cover, "only one substitute assignment expected")
			cover = &result.Assignments[i]
		}
	}
	require.NotNil(t, cover)
	assert.Equal(t, leaveDate, cover.Date)
	assert.Equal(t, shiftsystem.ShiftDay, cover.ShiftType)
	assert.Equal(t, float64(12), cover.WorkedHours)
	require.NotNil(t, cover.OriginalEmployeeID)
	assert.Equal(t, "emp-01", *cover.OriginalEmployeeID)
	require.NotNil(t, cover.OriginalShiftType)
	assert.Equal(t, shiftsystem.ShiftDay, *cover.OriginalShiftType)
	assert.Contains(t, cover.Notes, "Guard 1")
}

func TestGenerate_SubstituteReuseIsIdempotent(t *testing.T) {
	f := newServiceFixture(twoShiftSystem(), makeEmployees(3))
	f.leaves.records = []leave.LeaveRecord{
		{ID: "lv-1", EmployeeID: "emp-01", Date: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), Code: leave.CodeAnnual, Paid: true},
	}

	req := generateRequest()
	req.Substitute = &roster.SubstituteInput{Name: "Reserve Guard", NationalID: "1234567890123456"}

	first, err := f.service.Generate(context.Background(), req)
	require.NoError(t, err)
	second, err := f.service.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Assignments, second.Assignments)
	assert.Equal(t, 2, f.substitutes.upserts)
}

func TestGenerate_OvertimeNamesUseRunSubstitute(t *testing.T) {
	f := newServiceFixture(twoShiftSystem(), makeEmployees(3))
	// An older standby is already on file; the run supplies a new one.
	f.substitutes.subs = []substitute.Substitute{
		{ID: "sub-old", ProjectID: testProjectID, Name: "Old Joker", NationalID: "9999999999999999", IsActive: true},
	}
	f.leaves.records = []leave.LeaveRecord{
		{ID: "lv-1", EmployeeID: "emp-01", Date: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), Code: leave.CodeMedical, Paid: true},
	}

	req := generateRequest()
	req.Substitute = &roster.SubstituteInput{Name: "Reserve Guard", NationalID: "1234567890123456"}

	result, err := f.service.Generate(context.Background(), req)
	require.NoError(t, err)

	var joker *roster.OvertimeSummary
	for i := range result.OvertimeSummaries {
		if result.OvertimeSummaries[i].IsSubstitute {
			joker = &result.OvertimeSummaries[i]
		}
	}
	require.NotNil(t, joker)
	assert.Equal(t, "sub-1234567890123456", joker.EmployeeID)
	assert.Equal(t, "Reserve Guard", joker.EmployeeName)
}

func TestGenerate_RunLocksReleased(t *testing.T) {
	f := newServiceFixture(twoShiftSystem(), makeEmployees(3))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.Generate(context.Background(), generateRequest())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	impl := f.service.(*rosterServiceImpl)
	impl.mu.Lock()
	defer impl.mu.Unlock()
	assert.Empty(t, impl.runLocks)
}

func TestGenerate_MissingShiftSystemID(t *testing.T) {
	f := newServiceFixture(twoShiftSystem(), makeEmployees(3))

	req := generateRequest()
	req.ShiftSystemID = ""

	_, err := f.service.Generate(context.Background(), req)
	assert.ErrorIs(t, err, roster.ErrMissingShiftSystem)
}

func TestGenerate_ShiftSystemNotFound(t *testing.T) {
	f := newServiceFixture(twoShiftSystem(), makeEmployees(3))

	req := generateRequest()
	req.ShiftSystemID = "sys-unknown"

	_, err := f.service.Generate(context.Background(), req)
	assert.ErrorIs(t, err, shiftsystem.ErrShiftSystemNotFound)
}

func TestGenerate_NoActiveEmployees(t *testing.T) {
	f := newServiceFixture(twoShiftSystem(), nil)

	_, err := f.service.Generate(context.Background(), generateRequest())
	assert.ErrorIs(t, err, roster.ErrInsufficientPersonnel)
}

func TestGenerate_InvalidRequest(t *testing.T) {
	f := newServiceFixture(twoShiftSystem(), makeEmployees(3))

	req := generateRequest()
	req.Year = 1900

	_, err := f.service.Generate(context.Background(), req)
	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestGenerate_StoreFailureKeepsPreviousMonth(t *testing.T) {
	f := newServiceFixture(twoShiftSystem(), makeEmployees(3))

	first, err := f.service.Generate(context.Background(), generateRequest())
	require.NoError(t, err)

	f.assignments.failReplace = true
	_, err = f.service.Generate(context.Background(), generateRequest())
	require.Error(t, err)

	stored, err := f.service.GetMonth(context.Background(), testProjectID, 2025, time.June)
	require.NoError(t, err)
	assert.Equal(t, first.Assignments, stored)
}

func TestOvertime_MonthNotGenerated(t *testing.T) {
	f := newServiceFixture(twoShiftSystem(), makeEmployees(3))

	_, err := f.service.Overtime(context.Background(), testProjectID, 2025, time.June)
	assert.ErrorIs(t, err, roster.ErrMonthNotGenerated)
}

func TestOvertime_FromStoredMonth(t *testing.T) {
	f := newServiceFixture(twoShiftSystem(), makeEmployees(3))

	_, err := f.service.Generate(context.Background(), generateRequest())
	require.NoError(t, err)

	summaries, err := f.service.Overtime(context.Background(), testProjectID, 2025, time.June)
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, "emp-01", summaries[0].EmployeeID)
	assert.Equal(t, "Guard 1", summaries[0].EmployeeName)
	for _, s := range summaries {
		assert.Equal(t, float64(240), s.WorkedHours)
	}
}
