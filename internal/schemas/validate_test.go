package schemas

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSchemas_AreValidJSON(t *testing.T) {
	for _, name := range []string{SkillDescriptions, FixedText, Snapshot} {
		t.Run(name, func(t *testing.T) {
			content, err := Schema(name)
			require.NoError(t, err)

			var v map[string]any
			assert.NoError(t, json.Unmarshal([]byte(content), &v))
			assert.Equal(t, "object", v["type"])
		})
	}
}

func TestSchema_Unknown(t *testing.T) {
	_, err := Schema("missing.schema.json")
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "missing.schema.json")
}

func TestValidate_SkillDescriptions(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantError bool
	}{
		{"valid", `{"skills": [{"lang": "Go", "line": "Concurrent services"}]}`, false},
		{"empty list", `{"skills": []}`, false},
		{"missing skills", `{"items": []}`, true},
		{"missing line", `{"skills": [{"lang": "Go"}]}`, true},
		{"empty lang", `{"skills": [{"lang": "", "line": "x"}]}`, true},
		{"wrong type", `{"skills": "Go"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(SkillDescriptions, tt.content)
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var valErr *ValidationError
			require.True(t, errors.As(err, &valErr))
			assert.NotEmpty(t, valErr.Errors)
		})
	}
}

func TestValidate_FixedText(t *testing.T) {
	assert.NoError(t, Validate(FixedText, `{"fixed_text": "Hello, world."}`))
	assert.Error(t, Validate(FixedText, `{"text": "Hello"}`))
	assert.Error(t, Validate(FixedText, `{"fixed_text": 42}`))
}

func TestValidate_MalformedDocument(t *testing.T) {
	err := Validate(FixedText, `{ invalid json }`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidateFile_Snapshot(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.json")
	require.NoError(t, os.WriteFile(valid, []byte(`{
		"profile": {"firstName": "Ada", "lastName": "Lovelace"},
		"skills": [{"name": "Go"}],
		"skill_descriptions": [{"lang": "Go", "line": "Services"}],
		"language_stats": {"Go": 1200}
	}`), 0644))
	assert.NoError(t, ValidateFile(Snapshot, valid))

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{
		"profile": {"firstName": "Ada"},
		"skills": [],
		"skill_descriptions": [],
		"language_stats": {"Go": -1}
	}`), 0644))
	err := ValidateFile(Snapshot, invalid)
	require.Error(t, err)

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Contains(t, valErr.Error(), "language_stats")
}

func TestValidateFile_NotFound(t *testing.T) {
	err := ValidateFile(Snapshot, filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"name": "test"}`))

	err := ValidateJSONString(schema, `{"age": 30}`)
	require.Error(t, err)
	valErr, ok := err.(*ValidationError)
	require.True(t, ok)
	require.Len(t, valErr.Errors, 1)
	assert.Equal(t, "(root)", valErr.Errors[0].Field)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "skills", Message: "is required"},
			{Field: "skills.0.line", Message: "Invalid type"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "1. skills: is required")
	assert.Contains(t, msg, "2. skills.0.line: Invalid type")
}
