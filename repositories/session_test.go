package repositories

import (
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"comment-board/errors"
)

func Test_Create_And_Resolve(t *testing.T) {
	req := require.New(t)
	repository := NewSessionRepository(openTestDB(t), slog.Default())

	token, err := repository.Create("alice", 24*time.Hour)
	req.NoError(err)
	req.Len(token, 32) // 16 random bytes, hex-encoded

	username, err := repository.Resolve(token)
	req.NoError(err)
	req.Equal("alice", username)
}

func Test_Resolve_Unknown_Token(t *testing.T) {
	req := require.New(t)
	repository := NewSessionRepository(openTestDB(t), slog.Default())

	_, err := repository.Resolve("deadbeefdeadbeefdeadbeefdeadbeef")
	req.ErrorIs(err, errors.ErrSessionNotFound)
}

func Test_Resolve_Does_Not_Extend_Expiry(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repository := NewSessionRepository(db, slog.Default())

	token, err := repository.Create("alice", time.Hour)
	req.NoError(err)

	before := readStoredExpiry(t, db, token)
	for i := 0; i < 3; i++ {
		username, err := repository.Resolve(token)
		req.NoError(err)
		req.Equal("alice", username)
	}
	after := readStoredExpiry(t, db, token)

	req.Equal(before, after)
}

func Test_Expired_Session_Is_Evicted_On_First_Access(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repository := NewSessionRepository(db, slog.Default())

	// Already expired at creation.
	token, err := repository.Create("alice", -time.Second)
	req.NoError(err)

	_, err = repository.Resolve(token)
	req.ErrorIs(err, errors.ErrSessionNotFound)

	// The record itself is gone, not just reported as expired.
	err = db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(sessionPrefix + token))
		return err
	})
	req.ErrorIs(err, badger.ErrKeyNotFound)

	// Eviction is permanent.
	_, err = repository.Resolve(token)
	req.ErrorIs(err, errors.ErrSessionNotFound)
}

func Test_Destroy_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	repository := NewSessionRepository(openTestDB(t), slog.Default())

	token, err := repository.Create("alice", 24*time.Hour)
	req.NoError(err)

	req.NoError(repository.Destroy(token))
	req.NoError(repository.Destroy(token))
	req.NoError(repository.Destroy("never-created-token"))

	_, err = repository.Resolve(token)
	req.ErrorIs(err, errors.ErrSessionNotFound)
}

func Test_Destroyed_Token_Stays_Dead_After_New_Sessions(t *testing.T) {
	req := require.New(t)
	repository := NewSessionRepository(openTestDB(t), slog.Default())

	token, err := repository.Create("alice", 24*time.Hour)
	req.NoError(err)
	req.NoError(repository.Destroy(token))

	// New sessions draw fresh tokens; the destroyed one never resolves again.
	for i := 0; i < 5; i++ {
		fresh, err := repository.Create("bob", 24*time.Hour)
		req.NoError(err)
		req.NotEqual(token, fresh)
	}
	_, err = repository.Resolve(token)
	req.ErrorIs(err, errors.ErrSessionNotFound)
}

func readStoredExpiry(t *testing.T, db *badger.DB, token string) time.Time {
	t.Helper()
	var stored storedSession
	err := db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(sessionPrefix + token))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &stored)
		})
	})
	require.NoError(t, err)
	return stored.ExpiresAt
}
