// Package web is the routing and rendering layer of the comment site.
// All authentication decisions are delegated to the auth service: this layer
// only extracts the credential token from the request cookie and hands it
// over, so the core stays independent of the transport.
package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"comment-board/services"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Cookie names, matching the original site. Only SessionCookieName is ever
// trusted on the way back in; the other two are display hints the site
// exposes to client scripts.
const (
	SessionCookieName       = "sessionId"
	authenticatedCookieName = "authenticated"
	usernameCookieName      = "username"
)

// Handler wires the comment site routes onto a gin engine.
type Handler struct {
	log          *slog.Logger
	auth         services.IAuthService
	comments     services.ICommentService
	cookieMaxAge int
}

// NewRouter builds the gin engine serving the whole site.
// cookieMaxAge is the session cookie lifetime in seconds, normally the
// session TTL.
func NewRouter(log *slog.Logger, auth services.IAuthService,
	comments services.ICommentService, cookieMaxAge int) *gin.Engine {
	h := &Handler{
		log:          log,
		auth:         auth,
		comments:     comments,
		cookieMaxAge: cookieMaxAge,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	router.GET("/", h.Home)
	router.GET("/register", h.RegisterForm)
	router.POST("/register", h.Register)
	router.GET("/login", h.LoginForm)
	router.POST("/login", h.Login)
	router.POST("/logout", h.Logout)
	router.GET("/comments", h.Comments)
	router.GET("/comment/new", h.NewCommentForm)
	router.POST("/comment", h.PostComment)
	router.GET("/health", h.Health)

	return router
}

// Home renders the landing page, greeting the current user if any.
func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{"User": h.currentUser(c)})
}

// Health reports liveness for the reverse proxy.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "comment-board",
	})
}

// sessionToken extracts the raw credential from the request cookie.
// The value is looked up verbatim; the transport carries no signature.
func sessionToken(c *gin.Context) services.Token {
	token, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return services.Token(token)
}

// currentUser resolves the request's cookie to a username, or "" when the
// visitor is anonymous.
func (h *Handler) currentUser(c *gin.Context) string {
	username, ok := h.auth.CurrentUser(sessionToken(c))
	if !ok {
		return ""
	}
	return username
}

func (h *Handler) setSessionCookies(c *gin.Context, token services.Token, username string) {
	// Intentionally neither Secure nor HttpOnly, like the original site.
	c.SetCookie(SessionCookieName, string(token), h.cookieMaxAge, "/", "", false, false)
	c.SetCookie(authenticatedCookieName, "true", h.cookieMaxAge, "/", "", false, false)
	c.SetCookie(usernameCookieName, username, h.cookieMaxAge, "/", "", false, false)
}

func (h *Handler) clearSessionCookies(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, false)
	c.SetCookie(authenticatedCookieName, "", -1, "/", "", false, false)
	c.SetCookie(usernameCookieName, "", -1, "/", "", false, false)
}
