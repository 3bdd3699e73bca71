package utils

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	DB "Backend-Scholarship-Finder/src/database"
)

func TestGenerateAndParseJWT(t *testing.T) {
	ConfigureJWT("utils-secret", 2*time.Hour)

	token, err := GenerateJWT("id-1", "admin", "admin")
	require.NoError(t, err)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "id-1", claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.InDelta(t, (2 * time.Hour).Seconds(), claims.RemainingTTL().Seconds(), 5)

	_, err = ParseJWT(token + "x")
	assert.Error(t, err)
	_, err = ParseJWT("")
	assert.Error(t, err)
}

func TestRemainingTTLWithoutExpiry(t *testing.T) {
	ConfigureJWT("", 3*time.Hour)

	var nilClaims *JWTClaims
	assert.Equal(t, 3*time.Hour, nilClaims.RemainingTTL())
	assert.Equal(t, 3*time.Hour, (&JWTClaims{}).RemainingTTL())
}

func TestBlacklist(t *testing.T) {
	DB.RedisClient = nil
	require.NoError(t, BlacklistToken("t1", time.Minute))
	listed, err := IsTokenBlacklisted("t1")
	require.NoError(t, err)
	assert.False(t, listed, "without redis every token is allowed")

	mr := miniredis.RunT(t)
	DB.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { DB.RedisClient = nil })

	require.NoError(t, BlacklistToken("t1", time.Minute))
	listed, err = IsTokenBlacklisted("t1")
	require.NoError(t, err)
	assert.True(t, listed)

	mr.FastForward(2 * time.Minute)
	listed, err = IsTokenBlacklisted("t1")
	require.NoError(t, err)
	assert.False(t, listed)
}
