package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT(42, "alice", true)
	require.NoError(t, err)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.True(t, claims.IsAdmin)
}

func TestJWTRejectsTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT(1, "bob", false)
	require.NoError(t, err)

	_, err = ParseJWT(token + "x")
	assert.Error(t, err)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateJWT(1, "bob", false)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = ParseJWT(token)
	assert.Error(t, err)
}

func TestJWTRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT(1, "bob", false)
	assert.Error(t, err)

	_, err = ParseJWT("anything")
	assert.Error(t, err)
}
