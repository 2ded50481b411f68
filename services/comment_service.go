//go:generate go run go.uber.org/mock/mockgen -source=comment_service.go -destination=../mocks/mock_comment_service.go -package=mocks
package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"comment-board/domain"
	"comment-board/errors"
	"comment-board/repositories"
)

type ICommentService interface {
	Post(token Token, text string) (domain.Comment, error)
	List() ([]domain.Comment, error)
}

type CommentService struct {
	authService       IAuthService
	commentRepository repositories.ICommentRepository
}

func NewCommentService(authService IAuthService,
	comments repositories.ICommentRepository) *CommentService {
	return &CommentService{
		authService:       authService,
		commentRepository: comments,
	}
}

// Post appends a comment attributed to the identity behind token.
// The author is snapshotted at this moment; later logout or expiry never
// rewrites it. Text is trimmed, and must be non-empty after trimming.
func (s *CommentService) Post(token Token, text string) (domain.Comment, error) {
	username, ok := s.authService.CurrentUser(token)
	if !ok {
		return domain.Comment{}, errors.ErrNotAuthenticated
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return domain.Comment{}, errors.ErrEmptyComment
	}

	comment := domain.Comment{
		ID:        uuid.New(),
		Author:    username,
		Text:      trimmed,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.commentRepository.StoreComment(comment); err != nil {
		return domain.Comment{}, err
	}

	return comment, nil
}

// List returns every comment in creation order, computed fresh on each call.
func (s *CommentService) List() ([]domain.Comment, error) {
	return s.commentRepository.GetComments()
}
