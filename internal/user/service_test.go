package user

import (
	"testing"

	"github.com/SlpAus/turntable-backend/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUserHashesPassword(t *testing.T) {
	testutil.NewTestDB(t, &User{})

	u, err := RegisterUser("alice", "hunter2")
	require.NoError(t, err)

	assert.NotZero(t, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.NotEqual(t, "hunter2", u.Password)
}

func TestRegisterUserRejectsDuplicateUsername(t *testing.T) {
	testutil.NewTestDB(t, &User{})

	_, err := RegisterUser("alice", "hunter2")
	require.NoError(t, err)

	_, err = RegisterUser("alice", "other-password")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthenticateUser(t *testing.T) {
	testutil.NewTestDB(t, &User{})

	registered, err := RegisterUser("alice", "hunter2")
	require.NoError(t, err)

	u, err := AuthenticateUser("alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, u.ID)

	_, err = AuthenticateUser("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// 不存在的用户返回同一个错误，避免用户名枚举
	_, err = AuthenticateUser("nobody", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetUserByUsername(t *testing.T) {
	testutil.NewTestDB(t, &User{})

	_, err := RegisterUser("alice", "hunter2")
	require.NoError(t, err)

	u, err := GetUserByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "alice", u.Username)

	missing, err := GetUserByUsername("nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
