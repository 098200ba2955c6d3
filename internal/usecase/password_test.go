package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericwen511/fintentacle-backend/internal/usecase"
)

func TestHashPassword(t *testing.T) {
	hash, err := usecase.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	// bcrypt salts every call, two hashes of the same input must differ
	second, err := usecase.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, hash, second)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := usecase.HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.True(t, usecase.VerifyPassword(hash, "s3cret-pass"))
	assert.False(t, usecase.VerifyPassword(hash, "wrong-pass"))
	assert.False(t, usecase.VerifyPassword(hash, ""))
	assert.False(t, usecase.VerifyPassword("", "s3cret-pass"))
}
