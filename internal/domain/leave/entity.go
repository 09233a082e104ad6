package leave

import "time"

// Code is the closed enumeration of leave types. The original records carry
// free-text type names; anything not in this enumeration is rejected at the
// boundary.
type Code string

const (
	CodeAnnual       Code = "annual"
	CodeExcuse       Code = "excuse"
	CodeMedical      Code = "medical"
	CodeHoliday      Code = "holiday"
	CodeMarriage     Code = "marriage"
	CodeBereavement  Code = "bereavement"
	CodeMaternity    Code = "maternity"
	CodeExternalDuty Code = "external_duty"
	CodeWeeklyRest   Code = "weekly_rest"
)

var CodeValues = []string{
	string(CodeAnnual),
	string(CodeExcuse),
	string(CodeMedical),
	string(CodeHoliday),
	string(CodeMarriage),
	string(CodeBereavement),
	string(CodeMaternity),
	string(CodeExternalDuty),
	string(CodeWeeklyRest),
}

// IsValid reports whether c is one of the enumerated codes.
func (c Code) IsValid() bool {
	for _, v := range CodeValues {
		if string(c) == v {
			return true
		}
	}
	return false
}

// CountsAsWork reports whether the absence still carries worked-day
// semantics. External duty is paid time away on assignment, not a holiday.
func (c Code) CountsAsWork() bool {
	return c == CodeExternalDuty
}

// LeaveRecord is immutable once created by the leave-management module.
type LeaveRecord struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Code       Code
	Paid       bool
	CreatedAt  time.Time
}
