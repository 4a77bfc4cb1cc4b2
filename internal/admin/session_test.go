package admin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_LoginSuccess(t *testing.T) {
	m := NewManager("admin", "s3cret", time.Hour)

	token, err := m.Login("admin", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, m.Valid(token))
}

func TestManager_LoginMismatch(t *testing.T) {
	m := NewManager("admin", "s3cret", time.Hour)

	tests := []struct {
		name     string
		user     string
		password string
	}{
		{"wrong password", "admin", "wrong"},
		{"wrong username", "root", "s3cret"},
		{"both wrong", "root", "wrong"},
		{"empty pair", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := m.Login(tt.user, tt.password)
			require.ErrorIs(t, err, ErrInvalidCredentials)
			assert.NotEmpty(t, err.Error(), "mismatch must carry a visible message")
			assert.Empty(t, token)
		})
	}
}

func TestManager_RepeatedMismatchNeverLocksOut(t *testing.T) {
	m := NewManager("admin", "s3cret", time.Hour)

	for i := 0; i < 10; i++ {
		_, err := m.Login("admin", "wrong")
		require.Error(t, err)
	}

	// Still no lockout after repeated failures.
	token, err := m.Login("admin", "s3cret")
	require.NoError(t, err)
	assert.True(t, m.Valid(token))
}

func TestManager_ValidUnknownToken(t *testing.T) {
	m := NewManager("admin", "s3cret", time.Hour)
	assert.False(t, m.Valid("not-a-token"))
	assert.False(t, m.Valid(""))
}

func TestManager_TokenExpiry(t *testing.T) {
	m := NewManager("admin", "s3cret", time.Minute)
	now := time.Now()
	m.timeNow = func() time.Time { return now }

	token, err := m.Login("admin", "s3cret")
	require.NoError(t, err)
	assert.True(t, m.Valid(token))

	now = now.Add(2 * time.Minute)
	assert.False(t, m.Valid(token))
}

func TestManager_EachLoginIssuesFreshToken(t *testing.T) {
	m := NewManager("admin", "s3cret", time.Hour)

	t1, err := m.Login("admin", "s3cret")
	require.NoError(t, err)
	t2, err := m.Login("admin", "s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, t1, t2)
	assert.True(t, m.Valid(t1))
	assert.True(t, m.Valid(t2))
}
