package roster

import (
	"testing"

	"github.com/cmlabs-hris/roster-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGenerateRequest() GenerateRequest {
	return GenerateRequest{
		ProjectID:     "proj-1",
		Year:          2025,
		Month:         6,
		ShiftSystemID: "sys-1",
	}
}

func TestGenerateRequest_Validate(t *testing.T) {
	req := validGenerateRequest()
	assert.NoError(t, req.Validate())
}

func TestGenerateRequest_Validate_MissingProject(t *testing.T) {
	req := validGenerateRequest()
	req.ProjectID = ""

	err := req.Validate()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "project_id")
}

func TestGenerateRequest_Validate_MonthOutOfRange(t *testing.T) {
	req := validGenerateRequest()
	req.Month = 13

	err := req.Validate()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "month")
}

func TestGenerateRequest_Validate_SubstituteNationalID(t *testing.T) {
	req := validGenerateRequest()
	req.Substitute = &SubstituteInput{Name: "Reserve Guard", NationalID: "12345"}

	err := req.Validate()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "substitute.national_id")

	req.Substitute.NationalID = "1234567890123456"
	assert.NoError(t, req.Validate())
}
