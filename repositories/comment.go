//go:generate go run go.uber.org/mock/mockgen -source=comment.go -destination=../mocks/mock_comment_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"comment-board/domain"
)

type ICommentRepository interface {
	StoreComment(comment domain.Comment) error
	GetComments() ([]domain.Comment, error)
}

type CommentRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitComments *int
}

func NewCommentRepository(db *badger.DB, log *slog.Logger, limitComments *int) CommentRepository {
	return CommentRepository{db: db, log: log, limitComments: limitComments}
}

// storedComment is the on-store representation of a comment record.
type storedComment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// StoreComment appends a comment. The key is formatted as
// "comment:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding
//     (lexicographical order = creation order).
//  2. Prevent data loss by using the UUID as a collision disambiguator if
//     two comments arrive at the same nanosecond.
func (c CommentRepository) StoreComment(comment domain.Comment) error {
	key := fmt.Sprintf("comment:%019d:%s", comment.CreatedAt.UnixNano(), comment.ID)
	data, err := json.Marshal(fromComment(comment))
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// GetComments returns all comments in creation order using a forward prefix
// scan; the padded timestamp in the key keeps iteration chronological.
// It stops collecting once the configured limitComments is reached.
func (c CommentRepository) GetComments() ([]domain.Comment, error) {
	var comments []domain.Comment

	err := c.db.View(func(txn *badger.Txn) error {
		prefix := []byte("comment:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if c.limitComments != nil && len(comments) == *c.limitComments {
				c.log.Debug(fmt.Sprintf("Maximum of %d comments reached", *c.limitComments))
				break
			}
			err := it.Item().Value(func(val []byte) error {
				var stored storedComment
				if err := json.Unmarshal(val, &stored); err != nil {
					return err
				}
				comment, err := toComment(stored)
				if err != nil {
					return err
				}
				comments = append(comments, comment)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return comments, nil
}

func fromComment(comment domain.Comment) storedComment {
	return storedComment{
		ID:        comment.ID.String(),
		Author:    comment.Author,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}
}

func toComment(stored storedComment) (domain.Comment, error) {
	parsedID, err := uuid.Parse(stored.ID)
	if err != nil {
		return domain.Comment{}, err
	}
	return domain.Comment{
		ID:        parsedID,
		Author:    stored.Author,
		Text:      stored.Text,
		CreatedAt: stored.CreatedAt,
	}, nil
}
