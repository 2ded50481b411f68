package repositories

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"comment-board/errors"
)

// openTestDB opens a throwaway in-memory store, closed with the test.
func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_CreateUser_And_Get(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openTestDB(t))

	created, err := repository.CreateUser("alice", "pw1")
	req.NoError(err)
	req.Equal("alice", created.Username)
	req.Equal("pw1", created.Password)

	fetched, err := repository.GetUser("alice")
	req.NoError(err)
	req.Equal("alice", fetched.Username)
	req.Equal("pw1", fetched.Password)
}

func Test_CreateUser_Duplicate_Leaves_Directory_Unchanged(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openTestDB(t))

	_, err := repository.CreateUser("alice", "pw1")
	req.NoError(err)

	_, err = repository.CreateUser("alice", "pw2")
	req.ErrorIs(err, errors.ErrUsernameTaken)

	// The losing registration must not overwrite the original account.
	fetched, err := repository.GetUser("alice")
	req.NoError(err)
	req.Equal("pw1", fetched.Password)
}

func Test_Usernames_Are_Case_Sensitive(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openTestDB(t))

	_, err := repository.CreateUser("alice", "pw1")
	req.NoError(err)
	_, err = repository.CreateUser("Alice", "pw2")
	req.NoError(err)

	lower, err := repository.GetUser("alice")
	req.NoError(err)
	req.Equal("pw1", lower.Password)

	upper, err := repository.GetUser("Alice")
	req.NoError(err)
	req.Equal("pw2", upper.Password)
}

func Test_GetUser_Unknown(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openTestDB(t))

	_, err := repository.GetUser("nobody")
	req.Error(err)
}
