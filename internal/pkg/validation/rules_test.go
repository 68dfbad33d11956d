package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringValidation(t *testing.T) {
	assert.True(t, NewStringValidation("Maths").WithMaxLength(10).Validate())
	assert.False(t, NewStringValidation("   ").Validate())
	assert.True(t, NewStringValidation("").WithRequired(false).Validate())
	assert.False(t, NewStringValidation(strings.Repeat("x", 11)).WithMaxLength(10).Validate())
	// rune count, not bytes
	assert.True(t, NewStringValidation("Türkçe Ödev").WithMaxLength(11).Validate())
}

func TestRangeValidation(t *testing.T) {
	assert.True(t, NewRangeValidation(0).Between(0, 50).Validate())
	assert.True(t, NewRangeValidation(50).Between(0, 50).Validate())
	assert.False(t, NewRangeValidation(51).Between(0, 50).Validate())
	assert.False(t, NewRangeValidation(0).Between(1, 10).Validate())
	assert.False(t, NewRangeValidation(-1).Between(0, 20).Validate())
}
