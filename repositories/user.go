//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"comment-board/domain"
	"comment-board/errors"
)

const userPrefix = "user:"

type IUserRepository interface {
	CreateUser(username, password string) (domain.Account, error)
	GetUser(username string) (domain.Account, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

// storedAccount is the on-store representation of an account record.
type storedAccount struct {
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateUser stores a new account and returns it.
// Uniqueness is enforced by a check-then-set inside a single transaction,
// keyed on the exact, case-sensitive username. A losing duplicate leaves the
// existing account untouched.
func (u UserRepository) CreateUser(username, password string) (domain.Account, error) {
	account := domain.Account{
		Username:  username,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(fromAccount(account))
	if err != nil {
		return domain.Account{}, fmt.Errorf("marshal failed: %w", err)
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		key := []byte(userPrefix + username)
		if _, err := txn.Get(key); err == nil {
			return errors.ErrUsernameTaken
		} else if err != badger.ErrKeyNotFound {
			return err
		}
		return txn.Set(key, data)
	})
	if err != nil {
		return domain.Account{}, err
	}

	return account, nil
}

// GetUser retrieves an account by exact username match.
func (u UserRepository) GetUser(username string) (domain.Account, error) {
	var stored storedAccount

	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userPrefix + username))
		if err != nil {
			return err // badger.ErrKeyNotFound for unknown usernames
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &stored)
		})
	})
	if err != nil {
		return domain.Account{}, err
	}

	return toAccount(stored), nil
}

func fromAccount(account domain.Account) storedAccount {
	return storedAccount{
		Username:  account.Username,
		Password:  account.Password,
		CreatedAt: account.CreatedAt,
	}
}

func toAccount(stored storedAccount) domain.Account {
	return domain.Account{
		Username:  stored.Username,
		Password:  stored.Password,
		CreatedAt: stored.CreatedAt,
	}
}
