package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func Test_GenerateAndVerifyToken(t *testing.T) {
	maker := NewJWTMaker(testSecret, 7*24*time.Hour)

	token, claims, err := maker.GenerateToken("admin-1", RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)

	parsed, err := maker.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", parsed.AdminID)
	assert.Equal(t, RoleAdmin, parsed.Role)
}

func Test_VerifyToken_RejectsExpired(t *testing.T) {
	maker := NewJWTMaker(testSecret, -time.Minute)
	token, _, err := maker.GenerateToken("admin-1", RoleAdmin)
	require.NoError(t, err)

	_, err = maker.VerifyToken(token)
	assert.Error(t, err)
}

func Test_VerifyToken_RejectsWrongSecret(t *testing.T) {
	maker := NewJWTMaker(testSecret, time.Hour)
	token, _, err := maker.GenerateToken("admin-1", RoleAdmin)
	require.NoError(t, err)

	other := NewJWTMaker("another-secret-another-secret-32", time.Hour)
	_, err = other.VerifyToken(token)
	assert.Error(t, err)
}

func Test_VerifyToken_RejectsGarbage(t *testing.T) {
	maker := NewJWTMaker(testSecret, time.Hour)
	_, err := maker.VerifyToken("not.a.token")
	assert.Error(t, err)
}
