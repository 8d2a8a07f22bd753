package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPasswordAcceptsCorrectPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-Pass!")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "s3cret-Pass!"))
}

func TestCheckPasswordRejectsWrongPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-Pass!")
	require.NoError(t, err)

	assert.False(t, CheckPassword(hash, "not-the-password"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestGenerateTemporaryPasswordLength(t *testing.T) {
	pw, err := GenerateTemporaryPassword(12)
	require.NoError(t, err)
	assert.Len(t, pw, 12)

	other, err := GenerateTemporaryPassword(12)
	require.NoError(t, err)
	assert.NotEqual(t, pw, other)
}
