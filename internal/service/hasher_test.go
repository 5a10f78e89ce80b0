package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Low cost keeps the bcrypt tests fast.
const testBcryptCost = 4

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(testBcryptCost)

	digest, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", digest)
	assert.True(t, hasher.Verify("secret123", digest))
}

func TestPasswordHasher_SaltedDigestsDiffer(t *testing.T) {
	hasher := NewPasswordHasher(testBcryptCost)

	first, err := hasher.Hash("secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of the same plaintext should differ")
	assert.True(t, hasher.Verify("secret123", first))
	assert.True(t, hasher.Verify("secret123", second))
}

func TestPasswordHasher_VerifyMismatch(t *testing.T) {
	hasher := NewPasswordHasher(testBcryptCost)

	digest, err := hasher.Hash("secret123")
	require.NoError(t, err)

	assert.False(t, hasher.Verify("wrong password", digest))
}

func TestPasswordHasher_VerifyCorruptDigest(t *testing.T) {
	hasher := NewPasswordHasher(testBcryptCost)

	assert.False(t, hasher.Verify("secret123", "not-a-bcrypt-digest"))
	assert.False(t, hasher.Verify("secret123", ""))
}

func TestPasswordHasher_EmptyPlaintext(t *testing.T) {
	hasher := NewPasswordHasher(testBcryptCost)

	digest, err := hasher.Hash("")
	require.NoError(t, err)
	assert.True(t, hasher.Verify("", digest))
	assert.False(t, hasher.Verify("anything", digest))
}

func TestNewPasswordHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewPasswordHasher(99)

	digest, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.True(t, hasher.Verify("secret123", digest))
}
