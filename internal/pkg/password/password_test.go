package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	hash, err := Hash("correct horse battery")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, Verify("correct horse battery", hash))
	assert.False(t, Verify("wrong password", hash))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "valid mixed", password: "sup3r-secret", wantErr: nil},
		{name: "exactly eight chars", password: "abcd123!", wantErr: nil},
		{name: "too short", password: "abc123", wantErr: ErrTooShort},
		{name: "entirely numeric", password: "12345678", wantErr: ErrEntirelyNumeric},
		{name: "numeric but long", password: "1234567890123456", wantErr: ErrEntirelyNumeric},
		{name: "empty", password: "", wantErr: ErrTooShort},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
