package roster

import (
	"time"

	"github.com/cmlabs-hris/roster-backend-go/internal/pkg/validator"
)

type GenerateRequest struct {
	ProjectID     string `json:"project_id"`
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	ShiftSystemID string `json:"shift_system_id"`

	// Substitute optionally registers a brand-new standby person to use for
	// this run. Keyed by national id; re-sending the same person reuses the
	// existing record.
	Substitute *SubstituteInput `json:"substitute,omitempty"`
}

type SubstituteInput struct {
	Name       string  `json:"name"`
	NationalID string  `json:"national_id"`
	Company    *string `json:"company,omitempty"`
	Phone      *string `json:"phone,omitempty"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id is required",
		})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if r.Substitute != nil {
		if validator.IsEmpty(r.Substitute.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "substitute.name",
				Message: "substitute name is required",
			})
		}
		if !validator.IsValidNationalID(r.Substitute.NationalID) {
			errs = append(errs, validator.ValidationError{
				Field:   "substitute.national_id",
				Message: "substitute national_id must be a 16-digit number",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type GenerateResult struct {
	ProjectID         string            `json:"project_id"`
	Year              int               `json:"year"`
	Month             int               `json:"month"`
	Assignments       []Assignment      `json:"-"`
	CoverageIssues    []CoverageIssue   `json:"-"`
	OvertimeSummaries []OvertimeSummary `json:"-"`
}

type AssignmentResponse struct {
	ID                 string  `json:"id"`
	EmployeeID         string  `json:"employee_id"`
	Date               string  `json:"date"`
	ShiftType          string  `json:"shift_type"`
	StartTime          *string `json:"start_time,omitempty"`
	EndTime            *string `json:"end_time,omitempty"`
	WorkedHours        float64 `json:"worked_hours"`
	IsWeekend          bool    `json:"is_weekend"`
	IsSubstitute       bool    `json:"is_substitute"`
	OriginalEmployeeID *string `json:"original_employee_id,omitempty"`
	OriginalShiftType  *string `json:"original_shift_type,omitempty"`
	LeaveCode          *string `json:"leave_code,omitempty"`
	IsHoliday          bool    `json:"is_holiday"`
	Notes              string  `json:"notes,omitempty"`
}

type CoverageIssueResponse struct {
	Date         string `json:"date"`
	ShiftType    string `json:"shift_type"`
	MissingCount int    `json:"missing_count"`
}

type OvertimeSummaryResponse struct {
	EmployeeID              string  `json:"employee_id"`
	EmployeeName            string  `json:"employee_name"`
	IsSubstitute            bool    `json:"is_substitute"`
	WorkedHours             float64 `json:"worked_hours"`
	LegalMonthlyHours       float64 `json:"legal_monthly_hours"`
	ExcessHours             float64 `json:"excess_hours"`
	RequiredSubstituteHours float64 `json:"required_substitute_hours"`
	RequiredSubstituteDays  float64 `json:"required_substitute_days"`
	EstimatedCost           float64 `json:"estimated_cost"`
}

type GenerateResponse struct {
	ProjectID         string                    `json:"project_id"`
	Year              int                       `json:"year"`
	Month             int                       `json:"month"`
	Assignments       []AssignmentResponse      `json:"assignments"`
	CoverageIssues    []CoverageIssueResponse   `json:"coverage_issues"`
	OvertimeSummaries []OvertimeSummaryResponse `json:"overtime_summaries"`
}

// MapAssignmentToResponse flattens an Assignment for the HTTP surface.
func MapAssignmentToResponse(a Assignment) AssignmentResponse {
	resp := AssignmentResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		Date:         a.Date.Format("2006-01-02"),
		ShiftType:    string(a.ShiftType),
		WorkedHours:  a.WorkedHours,
		IsWeekend:    a.IsWeekend,
		IsSubstitute: a.IsSubstitute,
		IsHoliday:    a.IsHoliday,
		Notes:        a.Notes,
	}
	if !a.StartTime.Equal(a.EndTime) {
		start := a.StartTime.Format(time.RFC3339)
		end := a.EndTime.Format(time.RFC3339)
		resp.StartTime = &start
		resp.EndTime = &end
	}
	if a.OriginalEmployeeID != nil {
		id := *a.OriginalEmployeeID
		resp.OriginalEmployeeID = &id
	}
	if a.OriginalShiftType != nil {
		st := string(*a.OriginalShiftType)
		resp.OriginalShiftType = &st
	}
	if a.LeaveCode != nil {
		code := string(*a.LeaveCode)
		resp.LeaveCode = &code
	}
	return resp
}

func MapCoverageIssueToResponse(issue CoverageIssue) CoverageIssueResponse {
	return CoverageIssueResponse{
		Date:         issue.Date.Format("2006-01-02"),
		ShiftType:    string(issue.ShiftType),
		MissingCount: issue.MissingCount,
	}
}

func MapOvertimeSummaryToResponse(s OvertimeSummary) OvertimeSummaryResponse {
	return OvertimeSummaryResponse(s)
}
