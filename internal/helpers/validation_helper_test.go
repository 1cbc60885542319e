package helpers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kerbside/kerbside-api/internal/helpers"
)

func TestValidateVatNumber(t *testing.T) {
	tests := []struct {
		name         string
		vatNumber    string
		wantValid    bool
		wantWarnings int
	}{
		{name: "nine digit form", vatNumber: "GB123456789", wantValid: true},
		{name: "twelve digit form", vatNumber: "GB123456789012", wantValid: true},
		{name: "spaces stripped with warning", vatNumber: "GB 123 4567 89", wantValid: true, wantWarnings: 1},
		{name: "lowercase prefix normalized", vatNumber: "gb123456789", wantValid: true, wantWarnings: 1},
		{name: "missing prefix", vatNumber: "123456789", wantValid: false},
		{name: "too few digits", vatNumber: "GB12345678", wantValid: false},
		{name: "ten digits is neither form", vatNumber: "GB1234567890", wantValid: false},
		{name: "empty", vatNumber: "", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := helpers.ValidateVatNumber(tt.vatNumber)
			assert.Equal(t, tt.wantValid, result.IsValid)
			assert.Len(t, result.Warnings, tt.wantWarnings)
			if !tt.wantValid {
				assert.NotEmpty(t, result.Errors)
			}
		})
	}
}

func TestValidateUtr(t *testing.T) {
	assert.True(t, helpers.ValidateUtr("1234567890").IsValid)
	assert.True(t, helpers.ValidateUtr("12345 67890").IsValid)
	assert.False(t, helpers.ValidateUtr("123456789").IsValid)
	assert.False(t, helpers.ValidateUtr("12345678901").IsValid)
	assert.False(t, helpers.ValidateUtr("123456789X").IsValid)
	assert.False(t, helpers.ValidateUtr("").IsValid)
}
