package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProfile = `{
  "personal_info": {"full_name": "Dana Smith"},
  "work_experience": [
    {"company": "Acme", "position": "Engineer", "start_date": "2022-05"}
  ]
}`

func TestValidateProfileOK(t *testing.T) {
	assert.NoError(t, Validate(ProfileSchema, []byte(validProfile)))
}

func TestValidateProfileMissingRequired(t *testing.T) {
	err := Validate(ProfileSchema, []byte(`{"personal_info": {"full_name": "Dana"}}`))
	require.Error(t, err)

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.NotEmpty(t, valErr.Errors)
}

func TestValidateProfileBadDateFormat(t *testing.T) {
	err := Validate(ProfileSchema, []byte(`{
	  "personal_info": {"full_name": "Dana"},
	  "work_experience": [{"company": "Acme", "position": "Eng", "start_date": "May 2022"}]
	}`))
	assert.Error(t, err)
}

func TestValidateRequirementsOK(t *testing.T) {
	err := Validate(RequirementsSchema, []byte(`{
	  "skills": [{"skill": "Go", "importance": "required"}],
	  "seniority": "senior",
	  "source_text": "posting"
	}`))
	assert.NoError(t, err)
}

func TestValidateRequirementsBadImportance(t *testing.T) {
	err := Validate(RequirementsSchema, []byte(`{
	  "skills": [{"skill": "Go", "importance": "critical"}],
	  "seniority": "senior"
	}`))
	assert.Error(t, err)
}

func TestValidateUnknownSchema(t *testing.T) {
	err := Validate("nonexistent", []byte("{}"))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(validProfile), 0644))
	assert.NoError(t, ValidateFile(ProfileSchema, path))

	assert.Error(t, ValidateFile(ProfileSchema, filepath.Join(t.TempDir(), "nope.json")))
}
