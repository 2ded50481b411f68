package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"comment-board/domain"
	apperrors "comment-board/errors"
)

// commentView is the template-facing shape of a comment.
type commentView struct {
	Author    string
	Text      string
	CreatedAt string
}

// Comments renders every comment in creation order.
func (h *Handler) Comments(c *gin.Context) {
	comments, err := h.comments.List()
	if err != nil {
		h.log.Error("listing comments failed", "error", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.HTML(http.StatusOK, "comments.html", gin.H{
		"User": h.currentUser(c),
		"Comments": lo.Map(comments, func(comment domain.Comment, _ int) commentView {
			return commentView{
				Author:    comment.Author,
				Text:      comment.Text,
				CreatedAt: comment.CreatedAt.Format(time.RFC822),
			}
		}),
	})
}

// NewCommentForm renders the comment form, or the login form with a hint
// when the visitor is anonymous.
func (h *Handler) NewCommentForm(c *gin.Context) {
	username, ok := h.auth.CurrentUser(sessionToken(c))
	if !ok {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"User":  nil,
			"Error": "Please login to create a comment.",
		})
		return
	}

	c.HTML(http.StatusOK, "new_comment.html", gin.H{
		"User":  username,
		"Error": nil,
	})
}

// PostComment appends a comment attributed to the current user.
func (h *Handler) PostComment(c *gin.Context) {
	_, err := h.comments.Post(sessionToken(c), c.PostForm("text"))
	switch {
	case errors.Is(err, apperrors.ErrNotAuthenticated):
		c.HTML(http.StatusOK, "login.html", gin.H{
			"User":  nil,
			"Error": "Please login to create a comment.",
		})
	case errors.Is(err, apperrors.ErrEmptyComment):
		c.HTML(http.StatusOK, "new_comment.html", gin.H{
			"User":  h.currentUser(c),
			"Error": "Comment text is required.",
		})
	case err != nil:
		h.log.Error("posting comment failed", "error", err)
		c.String(http.StatusInternalServerError, "internal error")
	default:
		c.Redirect(http.StatusFound, "/comments")
	}
}
