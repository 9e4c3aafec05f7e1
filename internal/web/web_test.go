package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_AllPagesRender(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	data := map[string]any{
		"color": "#C1FF9C", "my_name": "Team", "name": "Jane Doe",
		"id": "E1", "fname": "Jane", "lname": "Doe", "interest": "Go", "location": "Remote",
		"message": "boom",
	}
	for _, page := range []string{PageAddEmployee, PageAddedEmployee, PageAbout, PageGetEmployee, PageEmployeeOutput, PageUnavailable, PageError} {
		var buf bytes.Buffer
		require.NoError(t, tmpl.ExecuteTemplate(&buf, page, data), page)
		assert.Contains(t, buf.String(), "#C1FF9C", page)
		assert.Contains(t, buf.String(), "Team", page)
	}
}

func TestTemplates_EscapesUserInput(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, PageAddedEmployee, map[string]any{"name": "<script>x</script>"}))
	assert.NotContains(t, buf.String(), "<script>x</script>")
}
