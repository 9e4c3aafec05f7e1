package employees

import "github.com/dhima/employee-directory/internal/models"

// FormLookup reports a form value and whether the key was submitted at all,
// matching gin's Context.GetPostForm.
type FormLookup func(key string) (string, bool)

// ParseAddForm requires all five fields to be present. Empty values pass.
func ParseAddForm(lookup FormLookup) (models.AddEmployeeRequest, error) {
	var req models.AddEmployeeRequest
	targets := []struct {
		key string
		dst *string
	}{
		{"emp_id", &req.EmpID},
		{"first_name", &req.FirstName},
		{"last_name", &req.LastName},
		{"primary_skill", &req.PrimarySkill},
		{"location", &req.Location},
	}

	for _, t := range targets {
		v, ok := lookup(t.key)
		if !ok {
			return models.AddEmployeeRequest{}, NewValidationError("missing form field: %s", t.key)
		}
		*t.dst = v
	}
	return req, nil
}

// ParseFetchForm requires the emp_id field.
func ParseFetchForm(lookup FormLookup) (string, error) {
	v, ok := lookup("emp_id")
	if !ok {
		return "", NewValidationError("missing form field: emp_id")
	}
	return v, nil
}
