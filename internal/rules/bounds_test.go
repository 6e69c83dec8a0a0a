package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPriceInRange(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected bool
	}{
		{name: "Below range", value: -10, min: 0, max: 100, expected: false},
		{name: "Above range", value: 200, min: 0, max: 100, expected: false},
		{name: "At minimum", value: 0, min: 0, max: 100, expected: true},
		{name: "At maximum", value: 100, min: 0, max: 100, expected: true},
		{name: "Inside range", value: 50, min: 0, max: 100, expected: true},
		{name: "Degenerate range", value: 5, min: 5, max: 5, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsPriceInRange(tt.value, tt.min, tt.max))
			assert.Equal(t, tt.min <= tt.value && tt.value <= tt.max, IsPriceInRange(tt.value, tt.min, tt.max))
		})
	}
}

func TestIsValidUsername(t *testing.T) {
	minLength := DefaultUsernameMinLength
	maxLength := DefaultUsernameMaxLength

	tests := []struct {
		name     string
		input    Value
		expected bool
	}{
		{name: "Shorter than minimum", input: String(strings.Repeat("A", minLength-1)), expected: false},
		{name: "Longer than maximum", input: String(strings.Repeat("A", maxLength+1)), expected: false},
		{name: "At minimum", input: String(strings.Repeat("A", minLength)), expected: true},
		{name: "At maximum", input: String(strings.Repeat("A", maxLength)), expected: true},
		{name: "Just above minimum", input: String(strings.Repeat("A", minLength+1)), expected: true},
		{name: "Just below maximum", input: String(strings.Repeat("A", maxLength-1)), expected: true},
		{name: "Null", input: Null(), expected: false},
		{name: "Missing", input: Missing(), expected: false},
		{name: "Number", input: Number(123456), expected: false},
		{name: "Bool", input: Bool(true), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidUsername(tt.input))
		})
	}
}

func TestIsValidUsername_WithLengthBounds(t *testing.T) {
	opt := WithLengthBounds(2, 3)

	assert.False(t, IsValidUsername(String("a"), opt))
	assert.True(t, IsValidUsername(String("ab"), opt))
	assert.True(t, IsValidUsername(String("abc"), opt))
	assert.False(t, IsValidUsername(String("abcd"), opt))
	assert.False(t, IsValidUsername(Null(), opt))
}
