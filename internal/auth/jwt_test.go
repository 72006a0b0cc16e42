package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := NewTokenManager("test-secret", "food-kart", time.Hour)

	token, err := m.Issue("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestTokenManager_Issue_EmptyUser(t *testing.T) {
	m := NewTokenManager("test-secret", "food-kart", time.Hour)

	_, err := m.Issue("")
	assert.ErrorIs(t, err, ErrMissingSubject)
}

func TestTokenManager_Verify_Rejects(t *testing.T) {
	m := NewTokenManager("test-secret", "food-kart", time.Hour)

	expired := NewTokenManager("test-secret", "food-kart", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.Issue("user-1")
	require.NoError(t, err)

	otherSecret, err := NewTokenManager("other-secret", "food-kart", time.Hour).Issue("user-1")
	require.NoError(t, err)

	otherIssuer, err := NewTokenManager("test-secret", "someone-else", time.Hour).Issue("user-1")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"Garbage", "not-a-token"},
		{"Expired", expiredToken},
		{"Wrong secret", otherSecret},
		{"Wrong issuer", otherIssuer},
		{"Unsigned", noneToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := m.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Empty(t, userID)
		})
	}
}

func TestUserIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, UserIDFromContext(ctx))

	ctx = WithUserID(ctx, "user-7")
	assert.Equal(t, "user-7", UserIDFromContext(ctx))
}
