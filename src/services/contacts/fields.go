package contacts

import (
	"strings"

	"Agency-Backend/src/models"
)

// Field names as stored in fieldsFilled. Identity fields count as
// filled fields too, the widget may capture nothing but an email.
const (
	FieldEmail            = "email"
	FieldPhone            = "phone"
	FieldFirstname        = "firstname"
	FieldLastname         = "lastname"
	FieldName             = "name"
	FieldCompany          = "company"
	FieldMessage          = "message"
	FieldBriefDescription = "brief_description"
)

// ProfileFields are the non-identity contact attributes.
var ProfileFields = []string{
	FieldFirstname,
	FieldLastname,
	FieldName,
	FieldCompany,
	FieldMessage,
	FieldBriefDescription,
}

// fieldValue reads one named field off a submission.
func fieldValue(s *models.Submission, name string) string {
	switch name {
	case FieldEmail:
		return s.Email
	case FieldPhone:
		return s.Phone
	case FieldFirstname:
		return s.Firstname
	case FieldLastname:
		return s.Lastname
	case FieldName:
		return s.Name
	case FieldCompany:
		return s.Company
	case FieldMessage:
		return s.Message
	case FieldBriefDescription:
		return s.BriefDescription
	}
	return ""
}

// setFieldValue writes one named field onto a submission.
func setFieldValue(s *models.Submission, name, value string) {
	switch name {
	case FieldEmail:
		s.Email = value
	case FieldPhone:
		s.Phone = value
	case FieldFirstname:
		s.Firstname = value
	case FieldLastname:
		s.Lastname = value
	case FieldName:
		s.Name = value
	case FieldCompany:
		s.Company = value
	case FieldMessage:
		s.Message = value
	case FieldBriefDescription:
		s.BriefDescription = value
	}
}

// allFields is identity + profile, the full fieldsFilled domain.
func allFields() []string {
	return append([]string{FieldEmail, FieldPhone}, ProfileFields...)
}

// markFilled flags a field as captured. Flags only ever go from false
// to true.
func markFilled(s *models.Submission, name string) {
	if s.FieldsFilled == nil {
		s.FieldsFilled = map[string]bool{}
	}
	s.FieldsFilled[name] = true
}

// hasTrimmed reports whether v carries anything besides whitespace.
func hasTrimmed(v string) bool {
	return strings.TrimSpace(v) != ""
}
