//go:generate go run go.uber.org/mock/mockgen -source=session.go -destination=../mocks/mock_session_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"comment-board/auth"
	"comment-board/domain"
	"comment-board/errors"
)

const sessionPrefix = "session:"

// errTokenCollision signals that a freshly drawn token already keys a live
// session. With 128-bit tokens this is practically unreachable; Create just
// draws again.
var errTokenCollision = fmt.Errorf("session token collision")

type ISessionRepository interface {
	Create(username string, ttl time.Duration) (string, error)
	Resolve(token string) (string, error)
	Destroy(token string) error
}

type SessionRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewSessionRepository(db *badger.DB, log *slog.Logger) ISessionRepository {
	return &SessionRepository{db: db, log: log}
}

// storedSession is the on-store representation of a session record.
type storedSession struct {
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Create mints a session for username expiring at now+ttl and returns the
// opaque token. The token is inserted with a check-then-set in a single
// transaction so it can never silently replace a live session.
func (s SessionRepository) Create(username string, ttl time.Duration) (string, error) {
	data, err := json.Marshal(storedSession{
		Username:  username,
		ExpiresAt: time.Now().Add(ttl).UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("marshal failed: %w", err)
	}

	for {
		token, err := auth.NewSessionToken()
		if err != nil {
			return "", fmt.Errorf("token generation failed: %w", err)
		}

		err = s.db.Update(func(txn *badger.Txn) error {
			key := []byte(sessionPrefix + token)
			if _, err := txn.Get(key); err == nil {
				return errTokenCollision
			} else if err != badger.ErrKeyNotFound {
				return err
			}
			return txn.Set(key, data)
		})
		if err == errTokenCollision {
			s.log.Warn("session token collision, drawing a new token")
			continue
		}
		if err != nil {
			return "", err
		}
		return token, nil
	}
}

// Resolve returns the username bound to token while the session is live.
// A session found past its deadline is evicted on this first access, and the
// eviction is permanent: every later resolve of the same token keeps failing.
// Resolving a live session does not touch its expiry.
func (s SessionRepository) Resolve(token string) (string, error) {
	var stored storedSession

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(sessionPrefix + token))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return errors.ErrSessionNotFound
			}
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &stored)
		})
	})
	if err != nil {
		return "", err
	}

	session := domain.Session{
		Token:     token,
		Username:  stored.Username,
		ExpiresAt: stored.ExpiresAt,
	}
	if session.Expired() {
		// Lazy expiration: there is no background sweep, the first lookup
		// past the deadline removes the record.
		if err := s.Destroy(token); err != nil {
			s.log.Warn("evicting expired session failed", "error", err)
		}
		return "", errors.ErrSessionNotFound
	}

	return session.Username, nil
}

// Destroy removes any session bound to token. Unknown tokens are a no-op,
// so destroying twice in a row succeeds both times.
func (s SessionRepository) Destroy(token string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(sessionPrefix + token))
	})
}
