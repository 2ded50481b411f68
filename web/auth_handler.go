package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "comment-board/errors"
)

// credentialsForm is the username/password pair posted by the login and
// registration forms.
type credentialsForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// RegisterForm renders the registration page.
func (h *Handler) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"User":  h.currentUser(c),
		"Error": nil,
	})
}

// Register creates the account and logs the visitor straight in.
func (h *Handler) Register(c *gin.Context) {
	var form credentialsForm
	_ = c.ShouldBind(&form)

	token, err := h.auth.Register(form.Username, form.Password)
	switch {
	case errors.Is(err, apperrors.ErrUsernameTaken):
		c.HTML(http.StatusOK, "register.html", gin.H{
			"User":  h.currentUser(c),
			"Error": "Username is already taken. Please choose another.",
		})
	case errors.Is(err, apperrors.ErrMissingField):
		c.HTML(http.StatusOK, "register.html", gin.H{
			"User":  h.currentUser(c),
			"Error": "Username and password are required.",
		})
	case err != nil:
		h.log.Error("registration failed", "error", err)
		c.String(http.StatusInternalServerError, "internal error")
	default:
		h.setSessionCookies(c, token, form.Username)
		c.Redirect(http.StatusFound, "/")
	}
}

// LoginForm renders the login page.
func (h *Handler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"User":  h.currentUser(c),
		"Error": nil,
	})
}

// Login authenticates the posted credentials and starts a session.
func (h *Handler) Login(c *gin.Context) {
	var form credentialsForm
	_ = c.ShouldBind(&form)

	token, err := h.auth.Login(form.Username, form.Password)
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			h.log.Error("login failed", "error", err)
		}
		c.HTML(http.StatusOK, "login.html", gin.H{
			"User":  nil,
			"Error": "Invalid username or password.",
		})
		return
	}

	h.setSessionCookies(c, token, form.Username)
	c.Redirect(http.StatusFound, "/")
}

// Logout ends the session. Logging out twice, or with no session at all,
// behaves the same as logging out once.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.auth.Logout(sessionToken(c)); err != nil {
		h.log.Warn("logout failed", "error", err)
	}
	h.clearSessionCookies(c)
	c.Redirect(http.StatusFound, "/")
}
