package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-jwt-secret"

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		kind  Kind
		issue func() (string, error)
	}{
		{
			name:  "access token",
			kind:  KindAccess,
			issue: func() (string, error) { return IssueAccessToken(42, testSecret, 15) },
		},
		{
			name:  "refresh token",
			kind:  KindRefresh,
			issue: func() (string, error) { return IssueRefreshToken(42, testSecret, 7) },
		},
		{
			name:  "password reset token",
			kind:  KindPasswordReset,
			issue: func() (string, error) { return IssuePasswordResetToken(42, "user@example.com", testSecret, 24) },
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			token, err := tt.issue()
			require.NoError(t, err)
			require.NotEmpty(t, token)

			claims, err := Verify(token, tt.kind, testSecret)
			require.NoError(t, err)
			assert.Equal(t, uint(42), claims.UserID)
			assert.Equal(t, tt.kind, claims.TokenType)
		})
	}
}

func TestVerify_WrongKind(t *testing.T) {
	t.Parallel()

	token, err := IssueRefreshToken(1, testSecret, 7)
	require.NoError(t, err)

	_, err = Verify(token, KindAccess, testSecret)
	assert.ErrorIs(t, err, ErrWrongTokenType)
	assert.NotErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	token, err := IssueAccessToken(1, testSecret, -1)
	require.NoError(t, err)

	_, err = Verify(token, KindAccess, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_BadSignature(t *testing.T) {
	t.Parallel()

	token, err := IssueAccessToken(1, "other-secret", 15)
	require.NoError(t, err)

	_, err = Verify(token, KindAccess, testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_Garbage(t *testing.T) {
	t.Parallel()

	_, err := Verify("not.a.token", KindAccess, testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_MissingSubject(t *testing.T) {
	t.Parallel()

	token, err := IssueAccessToken(0, testSecret, 15)
	require.NoError(t, err)

	_, err = Verify(token, KindAccess, testSecret)
	assert.ErrorIs(t, err, ErrMissingSubject)
}

func TestPasswordResetToken_CarriesEmail(t *testing.T) {
	t.Parallel()

	token, err := IssuePasswordResetToken(7, "reset@example.com", testSecret, 24)
	require.NoError(t, err)

	claims, err := Verify(token, KindPasswordReset, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "reset@example.com", claims.Email)
}
