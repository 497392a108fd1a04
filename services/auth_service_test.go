package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	user, err := RegisterUser("parent@example.com", "mật-khẩu-123", "Phụ huynh")
	require.NoError(t, err)
	assert.NotEqual(t, "mật-khẩu-123", user.Password)
	assert.True(t, user.EmailNotifications)

	token, err := AuthenticateUser("parent@example.com", "mật-khẩu-123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = AuthenticateUser("parent@example.com", "sai")
	assert.ErrorIs(t, err, ErrInvalidCredential)
	_, err = AuthenticateUser("nobody@example.com", "mật-khẩu-123")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setupTestDB(t)

	_, err := RegisterUser("parent@example.com", "mật-khẩu-123", "Phụ huynh")
	require.NoError(t, err)

	_, err = RegisterUser("parent@example.com", "khác", "Người khác")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUpdateUserSettings(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "parent@example.com")

	updated, err := UpdateUserSettings(user.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.EmailNotifications)

	fetched, err := GetUserSettings(user.ID)
	require.NoError(t, err)
	assert.False(t, fetched.EmailNotifications)

	_, err = GetUserSettings(user.ID + 999)
	assert.ErrorIs(t, err, ErrNotFound)
}
