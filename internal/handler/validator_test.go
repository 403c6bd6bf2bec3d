package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testETag = "5b0c5b6e-6f0e-4d6e-9d0b-0a7f1f3f2c11"

func TestValidator_LineValidation(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		lines   []string
		wantErr bool
	}{
		// CASE 1: Best Case
		{"single tube line", []string{"northern"}, false},
		{"mixed modes", []string{"dlr", "elizabeth", "tram", "windrush"}, false},

		// CASE 2: Boundary - no favorites is allowed
		{"empty", []string{}, false},
		{"nil", nil, false},

		// CASE 3: Edge - IDs are case sensitive
		{"uppercase id", []string{"Northern"}, true},

		// CASE 4: Invalid Case
		{"unknown line", []string{"thameslink"}, true},
		{"duplicate", []string{"central", "central"}, true},

		// CASE 5: Hostile input
		{"blank id", []string{""}, true},
		{"injection", []string{"northern'; DROP TABLE users;--"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(UpdateLinePreferencesRequest{ETag: testETag, FavoriteLines: tt.lines})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_ETagValidation(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		etag    string
		wantErr bool
	}{
		{"uuid", testETag, false},
		{"missing", "", true},
		{"not a uuid", "W/\"123\"", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(ETagRequest{ETag: tt.etag})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_TooManyLines(t *testing.T) {
	lines := make([]string, 51)
	for i := range lines {
		lines[i] = "northern"
	}

	err := GetValidator().ValidateStruct(UpdateLinePreferencesRequest{ETag: testETag, FavoriteLines: lines})
	require.Error(t, err)
	assert.Contains(t, FormatValidationError(err), "favoriteLines")
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})

	t.Run("required field", func(t *testing.T) {
		err := v.ValidateStruct(ETagRequest{})
		require.Error(t, err)
		assert.Equal(t, map[string]string{"etag": "This field is required"}, FormatValidationError(err))
	})

	t.Run("unknown line names the value", func(t *testing.T) {
		err := v.ValidateStruct(UpdateLinePreferencesRequest{ETag: testETag, FavoriteLines: []string{"thameslink"}})
		require.Error(t, err)
		assert.Equal(t, map[string]string{"favoriteLines[0]": `Unknown line "thameslink"`}, FormatValidationError(err))
	})

	t.Run("non validation error", func(t *testing.T) {
		assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(assert.AnError))
	})
}

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	err := GetValidator().ValidateStruct(UpdateLinePreferencesRequest{FavoriteLines: []string{"central", "central"}})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "This field is required", fields["etag"])
	assert.Equal(t, "Must not contain duplicates", fields["favoriteLines"])
}
