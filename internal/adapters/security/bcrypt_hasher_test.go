package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/alx-travel-app/backend/pkg/errors"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("hostpassword")
	require.NoError(t, err)

	assert.NotEqual(t, "hostpassword", hash)
	assert.NoError(t, hasher.Compare(hash, "hostpassword"))
	assert.Error(t, hasher.Compare(hash, "wrong"))
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("same")
	require.NoError(t, err)
	second, err := hasher.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasher(100).(*BcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestBcryptHasher_TooLongIsValidation(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("x", 73))
	assert.True(t, apperrors.IsValidation(err), "got %v", err)
	assert.Contains(t, err.Error(), "password must be at most 72 bytes")
}
