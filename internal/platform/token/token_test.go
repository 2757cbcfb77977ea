package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "belegplan/pkg/domain-errors"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewService("test-signing-key", "belegplan")

	signed, err := svc.Generate("user-1", "portal_backend", time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "portal_backend", claims.Role)
}

func TestValidateToken(t *testing.T) {
	svc := NewService("test-signing-key", "belegplan")

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("rejects a token signed with another key", func(t *testing.T) {
		other := NewService("different-key", "belegplan")
		signed, err := other.Generate("user-1", "portal_backend", time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(signed)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("rejects a wrong issuer", func(t *testing.T) {
		other := NewService("test-signing-key", "someone-else")
		signed, err := other.Generate("user-1", "portal_backend", time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(signed)
		require.Error(t, err)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		signed, err := svc.Generate("user-1", "portal_backend", -time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(signed)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}
