package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/globalhorizons/backend/models"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewTokenManager("test-secret")

	token, err := m.Issue(&models.User{ID: 7, Username: "admin", IsAdmin: true})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	require.Equal(t, int64(7), claims.UserID)
	require.Equal(t, "admin", claims.Username)
	require.True(t, claims.IsAdmin)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a").Issue(&models.User{ID: 1, Username: "admin", IsAdmin: true})
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b").Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpired(t *testing.T) {
	m := NewTokenManager("test-secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID:   1,
		Username: "admin",
		IsAdmin:  true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	signed, err := expired.SignedString(m.secret)
	require.NoError(t, err)

	_, err = m.Verify(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	_, err := NewTokenManager("test-secret").Verify("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestNonAdminClaimPreserved(t *testing.T) {
	m := NewTokenManager("test-secret")

	token, err := m.Issue(&models.User{ID: 2, Username: "viewer", IsAdmin: false})
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	require.False(t, claims.IsAdmin)
}
