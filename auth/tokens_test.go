package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanneekidev/rline-backend/models"
)

func testUser() *models.User {
	return &models.User{
		ID:       "user-1",
		Username: "alice",
		Email:    "alice@example.com",
		Role:     "user",
		JoinedAt: time.Now().Add(-24 * time.Hour).Truncate(time.Second),
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	user := testUser()

	token, err := tm.IssueAccess(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.ParseAccess(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.ID)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Role, claims.Role)
	assert.WithinDuration(t, user.JoinedAt, claims.JoinedAt, time.Second)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)

	token, err := tm.IssueRefresh(testUser())
	require.NoError(t, err)

	claims, err := tm.ParseRefresh(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
}

func TestAccessTokenRejectedByRefreshSecret(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)

	token, err := tm.IssueAccess(testUser())
	require.NoError(t, err)

	_, err = tm.ParseRefresh(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredTokenFailsUniformly(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret", -time.Minute, 24*time.Hour)

	token, err := tm.IssueAccess(testUser())
	require.NoError(t, err)

	_, err = tm.ParseAccess(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTamperedTokenFailsUniformly(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)

	token, err := tm.IssueAccess(testUser())
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = tm.ParseAccess(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestReissueKeepsClaims(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	user := testUser()

	refreshToken, err := tm.IssueRefresh(user)
	require.NoError(t, err)

	claims, err := tm.ParseRefresh(refreshToken)
	require.NoError(t, err)

	accessToken, err := tm.Reissue(claims)
	require.NoError(t, err)

	accessClaims, err := tm.ParseAccess(accessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, accessClaims.ID)
	assert.Equal(t, user.Username, accessClaims.Username)
}

func TestFromBearer(t *testing.T) {
	cases := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", true},
		{"lowercase scheme", "bearer abc", "abc", true},
		{"empty header", "", "", false},
		{"scheme only", "Bearer", "", false},
		{"scheme with empty token", "Bearer ", "", false},
		{"wrong scheme", "Basic abc", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := FromBearer(tc.header)
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, tc.token, token)
			} else {
				assert.ErrorIs(t, err, ErrNoToken)
			}
		})
	}
}
