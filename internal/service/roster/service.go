package roster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/roster-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/roster-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/roster-backend-go/internal/domain/roster"
	"github.com/cmlabs-hris/roster-backend-go/internal/domain/shiftsystem"
	"github.com/cmlabs-hris/roster-backend-go/internal/domain/substitute"
)

// Config carries the engine constants loaded from the environment.
type Config struct {
	LegalMonthlyHours    float64
	StandardShiftHours   float64
	SubstituteHourlyRate float64
}

type rosterServiceImpl struct {
	shiftSystemRepo shiftsystem.Repository
	personnelRepo   employee.PersonnelStore
	leaveRepo       leave.LeaveStore
	substituteRepo  substitute.Store
	assignmentRepo  roster.AssignmentRepository
	cfg             Config

	// Concurrent regeneration for the same (project, year, month) is
	// serialized; different keys run independently.
	mu       sync.Mutex
	runLocks map[string]*runLock
}

type runLock struct {
	mu   sync.Mutex
	refs int
}

func NewRosterService(
	shiftSystemRepo shiftsystem.Repository,
	personnelRepo employee.PersonnelStore,
	leaveRepo leave.LeaveStore,
	substituteRepo substitute.Store,
	assignmentRepo roster.AssignmentRepository,
	cfg Config,
) roster.Service {
	return &rosterServiceImpl{
		shiftSystemRepo: shiftSystemRepo,
		personnelRepo:   personnelRepo,
		leaveRepo:       leaveRepo,
		substituteRepo:  substituteRepo,
		assignmentRepo:  assignmentRepo,
		cfg:             cfg,
		runLocks:        make(map[string]*runLock),
	}
}

type openSlot struct {
	employeeID string
	date       time.Time
	def        shiftsystem.ShiftDefinition
}

// Generate implements roster.Service.
func (s *rosterServiceImpl) Generate(ctx context.Context, req roster.GenerateRequest) (roster.GenerateResult, error) {
	if err := req.Validate(); err != nil {
		return roster.GenerateResult{}, err
	}
	if req.ShiftSystemID == "" {
		return roster.GenerateResult{}, roster.ErrMissingShiftSystem
	}

	month := time.Month(req.Month)
	unlock := s.lockRun(fmt.Sprintf("%s:%04d-%02d", req.ProjectID, req.Year, req.Month))
	defer unlock()

	system, err := s.shiftSystemRepo.GetByID(ctx, req.ShiftSystemID, req.ProjectID)
	if err != nil {
		if errors.Is(err, shiftsystem.ErrShiftSystemNotFound) {
			return roster.GenerateResult{}, shiftsystem.ErrShiftSystemNotFound
		}
		return roster.GenerateResult{}, fmt.Errorf("failed to load shift system: %w", err)
	}

	employees, err := s.personnelRepo.ListActive(ctx, req.ProjectID)
	if err != nil {
		return roster.GenerateResult{}, fmt.Errorf("failed to list active employees: %w", err)
	}
	if len(employees) == 0 {
		return roster.GenerateResult{}, roster.ErrInsufficientPersonnel
	}

	draft, err := PlanMonth(system, employees, req.Year, month)
	if err != nil {
		return roster.GenerateResult{}, err
	}

	slots, err := s.applyLeave(ctx, req, draft, system)
	if err != nil {
		return roster.GenerateResult{}, err
	}

	assignments, sub, err := s.fillOpenSlots(ctx, req, draft, slots, employees)
	if err != nil {
		return roster.GenerateResult{}, err
	}

	sortAssignments(assignments)
	if err := checkOnePerEmployeeDay(assignments); err != nil {
		return roster.GenerateResult{}, err
	}

	issues := ValidateCoverage(system, assignments, req.Year, month)
	summaries := SummarizeOvertime(assignments, nameIndex(employees, sub), OvertimeConfig(s.cfg))

	if err := s.assignmentRepo.ReplaceMonth(ctx, req.ProjectID, req.Year, month, assignments); err != nil {
		return roster.GenerateResult{}, fmt.Errorf("failed to replace month assignments: %w", err)
	}

	slog.Info("roster generated",
		"project_id", req.ProjectID,
		"year", req.Year,
		"month", req.Month,
		"assignments", len(assignments),
		"coverage_gaps", len(issues),
	)

	return roster.GenerateResult{
		ProjectID:         req.ProjectID,
		Year:              req.Year,
		Month:             req.Month,
		Assignments:       assignments,
		CoverageIssues:    issues,
		OvertimeSummaries: summaries,
	}, nil
}

// applyLeave overlays recorded leave onto the draft in place and returns
// the working slots that lost their guard.
func (s *rosterServiceImpl) applyLeave(ctx context.Context, req roster.GenerateRequest, draft []roster.Assignment, system shiftsystem.ShiftSystem) ([]openSlot, error) {
	month := time.Month(req.Month)
	records, err := s.leaveRepo.ListForMonth(ctx, req.ProjectID, req.Year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load leave records: %w", err)
	}

	byKey := make(map[string]leave.LeaveRecord, len(records))
	for _, rec := range records {
		byKey[rec.EmployeeID+"/"+rec.Date.Format("2006-01-02")] = rec
	}

	var slots []openSlot
	for idx := range draft {
		a := &draft[idx]
		rec, ok := byKey[a.EmployeeID+"/"+a.Date.Format("2006-01-02")]
		if !ok {
			continue
		}
		if !rec.Code.IsValid() {
			return nil, fmt.Errorf("leave record %s: %w: %q", rec.ID, leave.ErrInvalidLeaveCode, rec.Code)
		}

		wasWorking := a.IsWorking()
		originalShift := a.ShiftType

		code := rec.Code
		a.ShiftType = shiftsystem.ShiftLeave
		a.StartTime = a.Date
		a.EndTime = a.Date
		a.WorkedHours = 0
		a.LeaveCode = &code
		a.IsHoliday = !code.CountsAsWork()

		if wasWorking {
			st := originalShift
			a.OriginalShiftType = &st
			if def, found := system.ShiftByType(originalShift); found {
				slots = append(slots, openSlot{employeeID: a.EmployeeID, date: a.Date, def: def})
			}
		}
	}

	return slots, nil
}

// fillOpenSlots covers leave-vacated working slots with the standby
// employee and returns the substitute it used, so downstream reporting
// labels the joker consistently with this run. The substitute inherits the
// original employee's shift type and window; a slot with no available
// joker stays open and surfaces through the coverage validator.
func (s *rosterServiceImpl) fillOpenSlots(ctx context.Context, req roster.GenerateRequest, assignments []roster.Assignment, slots []openSlot, employees []employee.Employee) ([]roster.Assignment, *substitute.Substitute, error) {
	if len(slots) == 0 {
		return assignments, nil, nil
	}

	sub, err := s.resolveSubstitute(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	if sub == nil {
		slog.Warn("no substitute available, leave slots stay uncovered",
			"project_id", req.ProjectID,
			"open_slots", len(slots),
		)
		return assignments, nil, nil
	}

	namesByID := make(map[string]string, len(employees))
	for _, emp := range employees {
		namesByID[emp.ID] = emp.Name
	}

	// One joker can hold only one slot per day; further conflicts on the
	// same date stay open.
	coveredDates := make(map[string]bool)
	for _, slot := range slots {
		dateKey := slot.date.Format("2006-01-02")
		if coveredDates[dateKey] {
			continue
		}
		coveredDates[dateKey] = true

		origID := slot.employeeID
		origShift := slot.def.Type
		start, end := slot.def.WindowOn(slot.date)
		assignments = append(assignments, roster.Assignment{
			ID:                 newAssignmentID(req.ProjectID, sub.ID, slot.date),
			ProjectID:          req.ProjectID,
			EmployeeID:         sub.ID,
			Date:               slot.date,
			ShiftType:          slot.def.Type,
			StartTime:          start,
			EndTime:            end,
			WorkedHours:        float64(slot.def.DurationHours),
			IsWeekend:          isWeekend(slot.date),
			IsSubstitute:       true,
			OriginalEmployeeID: &origID,
			OriginalShiftType:  &origShift,
			Notes:              fmt.Sprintf("joker cover for %s", namesByID[origID]),
		})
	}

	return assignments, sub, nil
}

func (s *rosterServiceImpl) resolveSubstitute(ctx context.Context, req roster.GenerateRequest) (*substitute.Substitute, error) {
	if req.Substitute != nil {
		sub, err := s.substituteRepo.Upsert(ctx, substitute.Substitute{
			ProjectID:  req.ProjectID,
			Name:       req.Substitute.Name,
			NationalID: req.Substitute.NationalID,
			Company:    req.Substitute.Company,
			Phone:      req.Substitute.Phone,
			IsActive:   true,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to upsert substitute: %w", err)
		}
		return &sub, nil
	}

	sub, err := s.substituteRepo.FindActive(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up substitute: %w", err)
	}
	return sub, nil
}

// GetMonth implements roster.Service.
func (s *rosterServiceImpl) GetMonth(ctx context.Context, projectID string, year int, month time.Month) ([]roster.Assignment, error) {
	assignments, err := s.assignmentRepo.GetMonth(ctx, projectID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load month assignments: %w", err)
	}
	return assignments, nil
}

// Overtime implements roster.Service.
func (s *rosterServiceImpl) Overtime(ctx context.Context, projectID string, year int, month time.Month) ([]roster.OvertimeSummary, error) {
	assignments, err := s.assignmentRepo.GetMonth(ctx, projectID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load month assignments: %w", err)
	}
	if len(assignments) == 0 {
		return nil, roster.ErrMonthNotGenerated
	}

	employees, err := s.personnelRepo.ListActive(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}

	sub, err := s.substituteRepo.FindActive(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up substitute: %w", err)
	}

	return SummarizeOvertime(assignments, nameIndex(employees, sub), OvertimeConfig(s.cfg)), nil
}

func nameIndex(employees []employee.Employee, sub *substitute.Substitute) map[string]string {
	names := make(map[string]string, len(employees)+1)
	for _, emp := range employees {
		names[emp.ID] = emp.Name
	}
	if sub != nil {
		names[sub.ID] = sub.Name
	}
	return names
}

// lockRun serializes runs sharing a key. Entries are reference counted and
// dropped once the last holder releases, so the map stays bounded by the
// number of in-flight runs.
func (s *rosterServiceImpl) lockRun(key string) func() {
	s.mu.Lock()
	l, ok := s.runLocks[key]
	if !ok {
		l = &runLock{}
		s.runLocks[key] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.runLocks, key)
		}
		s.mu.Unlock()
	}
}

func sortAssignments(assignments []roster.Assignment) {
	sort.Slice(assignments, func(i, j int) bool {
		if !assignments[i].Date.Equal(assignments[j].Date) {
			return assignments[i].Date.Before(assignments[j].Date)
		}
		return assignments[i].EmployeeID < assignments[j].EmployeeID
	})
}

func checkOnePerEmployeeDay(assignments []roster.Assignment) error {
	seen := make(map[string]bool, len(assignments))
	for _, a := range assignments {
		key := a.EmployeeID + "/" + a.Date.Format("2006-01-02")
		if seen[key] {
			return fmt.Errorf("%w: employee %s on %s", roster.ErrDuplicateAssignment, a.EmployeeID, a.Date.Format("2006-01-02"))
		}
		seen[key] = true
	}
	return nil
}
