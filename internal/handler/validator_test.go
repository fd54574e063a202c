package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatedRequest struct {
	Class      string `validate:"required,class"`
	Difficulty string `validate:"required,difficulty"`
	Weekday    int    `validate:"weekday"`
}

func TestValidatorCustomTags(t *testing.T) {
	v := GetValidator()

	valid := validatedRequest{Class: "WARRIOR", Difficulty: "EPIC", Weekday: 6}
	assert.NoError(t, v.ValidateStruct(valid))

	tests := []struct {
		name string
		req  validatedRequest
	}{
		{"unknown class", validatedRequest{Class: "NECROMANCER", Difficulty: "EASY"}},
		{"lowercase class", validatedRequest{Class: "warrior", Difficulty: "EASY"}},
		{"unknown difficulty", validatedRequest{Class: "MAGE", Difficulty: "NIGHTMARE"}},
		{"weekday out of range", validatedRequest{Class: "MAGE", Difficulty: "EASY", Weekday: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, v.ValidateStruct(tt.req))
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	err := v.ValidateStruct(validatedRequest{Difficulty: "NIGHTMARE"})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "This field is required", fields["class"])
	assert.Equal(t, "Unknown difficulty", fields["difficulty"])
}

func TestFormatValidationErrorNonValidator(t *testing.T) {
	fields := FormatValidationError(assert.AnError)
	assert.Equal(t, "Invalid request format", fields["error"])
}

func TestFormatValidationErrorNil(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
}
