package redaction

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name         string
		doc          map[string]interface{}
		expectedKeys []string
		wantErr      bool
		wantContains []string
	}{
		{
			name: "valid command and file lists",
			doc: map[string]interface{}{
				"commands": []interface{}{"/bin/dmesg", "/usr/bin/uptime"},
				"files":    []interface{}{"/etc/hosts"},
			},
			expectedKeys: redactionFileKeys,
		},
		{
			name: "valid with nil value treated as empty list",
			doc: map[string]interface{}{
				"commands": nil,
			},
			expectedKeys: redactionFileKeys,
		},
		{
			name: "valid flat patterns",
			doc: map[string]interface{}{
				"patterns": []interface{}{"password", "secret"},
			},
			expectedKeys: contentRedactionFileKeys,
		},
		{
			name: "valid regex patterns wrapper",
			doc: map[string]interface{}{
				"patterns": map[string]interface{}{
					"regex": []interface{}{"a.*b"},
				},
			},
			expectedKeys: contentRedactionFileKeys,
		},
		{
			name: "single unknown key",
			doc: map[string]interface{}{
				"commandz": []interface{}{"x"},
			},
			expectedKeys: redactionFileKeys,
			wantErr:      true,
			wantContains: []string{"commandz", "commands, files, components"},
		},
		{
			name: "every unknown key is named",
			doc: map[string]interface{}{
				"keywords": []interface{}{"x"},
				"bogus":    []interface{}{"y"},
				"extra":    "z",
			},
			expectedKeys: redactionFileKeys,
			wantErr:      true,
			wantContains: []string{"bogus", "extra", "keywords"},
		},
		{
			name: "value is not a list",
			doc: map[string]interface{}{
				"files": "just-a-string",
			},
			expectedKeys: redactionFileKeys,
			wantErr:      true,
			wantContains: []string{"files section", "list of strings"},
		},
		{
			name: "list with non-string element",
			doc: map[string]interface{}{
				"keywords": []interface{}{"ok", 42},
			},
			expectedKeys: contentRedactionFileKeys,
			wantErr:      true,
			wantContains: []string{"keywords section"},
		},
		{
			name: "patterns mapping without regex key",
			doc: map[string]interface{}{
				"patterns": map[string]interface{}{
					"other": []interface{}{"a"},
				},
			},
			expectedKeys: contentRedactionFileKeys,
			wantErr:      true,
			wantContains: []string{"\"regex\" key was not specified"},
		},
		{
			name: "patterns mapping with extra keys",
			doc: map[string]interface{}{
				"patterns": map[string]interface{}{
					"regex": []interface{}{"a"},
					"other": []interface{}{"b"},
				},
			},
			expectedKeys: contentRedactionFileKeys,
			wantErr:      true,
			wantContains: []string{"only \"regex\" is valid"},
		},
		{
			name: "regex value is not a list",
			doc: map[string]interface{}{
				"patterns": map[string]interface{}{
					"regex": "not-a-list",
				},
			},
			expectedKeys: contentRedactionFileKeys,
			wantErr:      true,
			wantContains: []string{"regex list under patterns"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDocument(tt.doc, tt.expectedKeys, "test.yaml")
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)

			var schemaErr *SchemaError
			require.True(t, errors.As(err, &schemaErr), "expected a SchemaError, got %T", err)
			for _, fragment := range tt.wantContains {
				assert.Contains(t, err.Error(), fragment)
			}
		})
	}
}

func TestIsStringList(t *testing.T) {
	assert.True(t, isStringList(nil))
	assert.True(t, isStringList([]interface{}{}))
	assert.True(t, isStringList([]interface{}{"a", "b"}))
	assert.False(t, isStringList("a"))
	assert.False(t, isStringList([]interface{}{"a", 1}))
	assert.False(t, isStringList(map[string]interface{}{"a": "b"}))
}
