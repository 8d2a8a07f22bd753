package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("staff@trainhub.app"))
	assert.True(t, IsValidEmail("first.last+tag@example.co"))

	assert.False(t, IsValidEmail("no-at-sign.example.com"))
	assert.False(t, IsValidEmail("trailing@dot."))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidEnrollmentNo(t *testing.T) {
	assert.True(t, IsValidEnrollmentNo("TH-2025-0042"))

	assert.False(t, IsValidEnrollmentNo("TH-25-0042"))
	assert.False(t, IsValidEnrollmentNo("th-2025-0042"))
	assert.False(t, IsValidEnrollmentNo("TH-2025-42"))
}
