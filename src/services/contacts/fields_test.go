package contacts

import (
	"testing"

	"Agency-Backend/src/models"

	"github.com/stretchr/testify/assert"
)

func TestApplyRequestAccumulatesFields(t *testing.T) {
	record := models.Submission{SubmissionStatus: models.SubmissionPartial}

	first := requestFields(&models.PartialSubmissionRequest{
		Email:     "dup@x.com",
		Firstname: "Jo",
	})
	applyRequest(&record, first)

	second := requestFields(&models.PartialSubmissionRequest{
		Email:    "dup@x.com",
		Lastname: "Doe",
	})
	applyRequest(&record, second)

	assert.Equal(t, "dup@x.com", record.Email)
	assert.Equal(t, "Jo", record.Firstname)
	assert.Equal(t, "Doe", record.Lastname)
	assert.Equal(t, map[string]bool{"email": true, "firstname": true, "lastname": true}, record.FieldsFilled)
}

func TestApplyRequestSkipsWhitespaceOnlyValues(t *testing.T) {
	record := models.Submission{}
	fields := requestFields(&models.PartialSubmissionRequest{
		Email:   "a@x.com",
		Company: "   ",
	})
	applyRequest(&record, fields)

	assert.Equal(t, "a@x.com", record.Email)
	assert.Empty(t, record.Company)
	assert.NotContains(t, record.FieldsFilled, "company")
}

func TestRequestFieldsNormalizesIdentity(t *testing.T) {
	fields := requestFields(&models.PartialSubmissionRequest{
		Email: "  Mixed@Case.COM ",
		Phone: "+1 (555) 010-2030",
	})

	assert.Equal(t, "mixed@case.com", fields[FieldEmail])
	assert.Equal(t, "+15550102030", fields[FieldPhone])
}

func TestMarkFilledNeverGoesFalse(t *testing.T) {
	record := models.Submission{FieldsFilled: map[string]bool{"email": true}}
	markFilled(&record, "email")
	markFilled(&record, "phone")

	assert.True(t, record.FieldsFilled["email"])
	assert.True(t, record.FieldsFilled["phone"])
}
