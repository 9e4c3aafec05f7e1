package employees

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(values url.Values) FormLookup {
	return func(key string) (string, bool) {
		v, ok := values[key]
		if !ok || len(v) == 0 {
			return "", false
		}
		return v[0], true
	}
}

func TestParseAddForm_AllFieldsPresent(t *testing.T) {
	values := url.Values{
		"emp_id": {"E1"}, "first_name": {"Jane"}, "last_name": {"Doe"},
		"primary_skill": {"Go"}, "location": {""},
	}

	req, err := ParseAddForm(lookupFrom(values))

	require.NoError(t, err)
	assert.Equal(t, "E1", req.EmpID)
	assert.Equal(t, "Go", req.PrimarySkill)
	assert.Equal(t, "", req.Location)
}

func TestParseAddForm_MissingFieldIsValidationError(t *testing.T) {
	values := url.Values{"emp_id": {"E1"}, "first_name": {"Jane"}}

	_, err := ParseAddForm(lookupFrom(values))

	var vErr ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "missing form field: last_name", vErr.Error())
}

func TestParseFetchForm(t *testing.T) {
	id, err := ParseFetchForm(lookupFrom(url.Values{"emp_id": {"E1"}}))
	require.NoError(t, err)
	assert.Equal(t, "E1", id)

	_, err = ParseFetchForm(lookupFrom(url.Values{}))
	var vErr ValidationError
	assert.True(t, errors.As(err, &vErr))
}
