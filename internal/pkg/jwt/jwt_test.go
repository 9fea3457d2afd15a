package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	token, err := Sign("user-1", "tenant-1", "OWNER")
	require.NoError(t, err)

	claims, err := Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "tenant-1", claims.TenantID)
	assert.Equal(t, "OWNER", claims.Role)
	assert.Equal(t, TypeAccess, claims.TokenType)
	assert.WithinDuration(t, time.Now().Add(AccessTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestSignRefreshTokenType(t *testing.T) {
	token, err := SignRefresh("user-1", "tenant-1", "EDITOR")
	require.NoError(t, err)

	claims, err := Parse(token)
	require.NoError(t, err)
	assert.Equal(t, TypeRefresh, claims.TokenType)
	assert.WithinDuration(t, time.Now().Add(RefreshTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestParseRejectsTampering(t *testing.T) {
	token, err := Sign("user-1", "tenant-1", "OWNER")
	require.NoError(t, err)

	_, err = Parse(token + "x")
	assert.Error(t, err)

	_, err = Parse("garbage")
	assert.Error(t, err)
}

func TestParseRejectsForeignSecret(t *testing.T) {
	token, err := Sign("user-1", "tenant-1", "OWNER")
	require.NoError(t, err)

	SetSecret("a-different-secret")
	defer SetSecret(defaultSecret)

	_, err = Parse(token)
	assert.Error(t, err)
}
