package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-registry/internal/application/command"
	"user-registry/internal/application/interfaces"
	"user-registry/internal/domain/entities"
	"user-registry/internal/infrastructure/db"
)

func newTestService(t *testing.T) interfaces.UserService {
	t.Helper()

	gormDB, err := db.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))

	return NewUserService(db.NewUserRepository(gormDB))
}

func TestCreateUserThenFindById(t *testing.T) {
	service := newTestService(t)

	created, err := service.CreateUser(&command.CreateUserCommand{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)
	assert.Positive(t, created.Result.Id)

	found, err := service.FindUserById(created.Result.Id)
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Result.Username)
	assert.Equal(t, "a@x.com", found.Result.Email)
	assert.Equal(t, created.Result.Id, found.Result.Id)
}

func TestCreateUserRejectsEmptyFields(t *testing.T) {
	service := newTestService(t)

	_, err := service.CreateUser(&command.CreateUserCommand{Username: "", Email: "a@x.com"})
	assert.Error(t, err)

	_, err = service.CreateUser(&command.CreateUserCommand{Username: "alice", Email: ""})
	assert.Error(t, err)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	service := newTestService(t)

	_, err := service.CreateUser(&command.CreateUserCommand{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)

	_, err = service.CreateUser(&command.CreateUserCommand{Username: "alice", Email: "other@x.com"})
	assert.ErrorIs(t, err, entities.ErrUsernameTaken)
}

func TestFindUserByIdMiss(t *testing.T) {
	service := newTestService(t)

	_, err := service.FindUserById(99)
	assert.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestListUsersSortedByUsername(t *testing.T) {
	service := newTestService(t)

	for _, u := range []struct{ username, email string }{
		{"dave", "d@x.com"},
		{"alice", "a@x.com"},
		{"carol", "c@x.com"},
		{"bob", "b@y.com"},
	} {
		_, err := service.CreateUser(&command.CreateUserCommand{Username: u.username, Email: u.email})
		require.NoError(t, err)
	}

	list, err := service.ListUsers()
	require.NoError(t, err)

	usernames := make([]string, 0, len(list.Result))
	for _, user := range list.Result {
		usernames = append(usernames, user.Username)
	}
	assert.Equal(t, []string{"alice", "bob", "carol", "dave"}, usernames)
}

func TestListUsersEmpty(t *testing.T) {
	service := newTestService(t)

	list, err := service.ListUsers()
	require.NoError(t, err)
	assert.Empty(t, list.Result)
}
