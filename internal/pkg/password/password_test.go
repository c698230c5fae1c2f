//go:build unit

package password_test

import (
	"testing"

	"clinic-booking/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.NoError(t, password.ComparePassword(hash, "correct horse"))
	assert.ErrorIs(t, password.ComparePassword(hash, "battery staple"), password.ErrComparisonFailed)
}

func TestEmptyInput(t *testing.T) {
	_, err := password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)

	assert.ErrorIs(t, password.ComparePassword("", "x"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.ComparePassword("hash", ""), password.ErrInvalidPassword)
}

func TestHasher_Cost(t *testing.T) {
	assert.Equal(t, bcrypt.MinCost, password.NewHasher(1).Cost())
	assert.Equal(t, bcrypt.MaxCost, password.NewHasher(99).Cost())
	assert.Equal(t, 10, password.NewHasher(10).Cost())
	assert.Equal(t, password.DefaultCost, password.Hasher{}.Cost())
}

func TestHasher_HashUsesCost(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
	assert.NoError(t, h.Compare(hash, "correct horse"))
}
