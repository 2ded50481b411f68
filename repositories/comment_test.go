package repositories

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"comment-board/domain"
)

func Test_Store_Multiple_Comments_In_Creation_Order(t *testing.T) {
	req := require.New(t)
	repository := NewCommentRepository(openTestDB(t), slog.Default(), nil)

	at := time.Now().UTC()
	comments := []domain.Comment{
		{ID: uuid.New(), Author: "alice", Text: "first", CreatedAt: at},
		{ID: uuid.New(), Author: "bob", Text: "second", CreatedAt: at.Add(1 * time.Minute)},
		{ID: uuid.New(), Author: "clara", Text: "third", CreatedAt: at.Add(2 * time.Minute)},
	}
	for _, comment := range comments {
		req.NoError(repository.StoreComment(comment))
	}

	fetched, err := repository.GetComments()
	req.NoError(err)
	req.Equal(comments, fetched)
}

func Test_Same_Timestamp_Comments_Are_All_Kept(t *testing.T) {
	req := require.New(t)
	repository := NewCommentRepository(openTestDB(t), slog.Default(), nil)

	// The UUID in the key disambiguates identical nanosecond timestamps.
	at := time.Now().UTC()
	for i := 0; i < 10; i++ {
		comment := domain.Comment{
			ID:        uuid.New(),
			Author:    "alice",
			Text:      fmt.Sprintf("comment %d", i),
			CreatedAt: at,
		}
		req.NoError(repository.StoreComment(comment))
	}

	fetched, err := repository.GetComments()
	req.NoError(err)
	req.Len(fetched, 10)
}

func Test_Get_Comments_And_Limit(t *testing.T) {
	req := require.New(t)
	limit := 2
	repository := NewCommentRepository(openTestDB(t), slog.Default(), &limit)

	at := time.Now().UTC()
	for i := 0; i < 5; i++ {
		comment := domain.Comment{
			ID:        uuid.New(),
			Author:    "alice",
			Text:      fmt.Sprintf("comment %d", i),
			CreatedAt: at.Add(time.Duration(i) * time.Second),
		}
		req.NoError(repository.StoreComment(comment))
	}

	fetched, err := repository.GetComments()
	req.NoError(err)
	req.Len(fetched, limit)
	req.Equal("comment 0", fetched[0].Text)
	req.Equal("comment 1", fetched[1].Text)
}

func Test_Get_Comments_Empty_Store(t *testing.T) {
	req := require.New(t)
	repository := NewCommentRepository(openTestDB(t), slog.Default(), nil)

	fetched, err := repository.GetComments()
	req.NoError(err)
	req.Empty(fetched)
}
