//go:generate go run go.uber.org/mock/mockgen -source=auth_service.go -destination=../mocks/mock_auth_service.go -package=mocks
package services

import (
	"time"

	"comment-board/auth"
	"comment-board/errors"
	"comment-board/repositories"
)

type IAuthService interface {
	Register(username, password string) (Token, error)
	Login(username, password string) (Token, error)
	Logout(token Token) error
	CurrentUser(token Token) (string, bool)
	IsAuthenticated(token Token) bool
}

// Token is the opaque credential handed to the client after login or
// registration and presented back on each request.
type Token string

type AuthService struct {
	userRepository    repositories.IUserRepository
	sessionRepository repositories.ISessionRepository
	sessionTTL        time.Duration
}

func NewAuthService(users repositories.IUserRepository,
	sessions repositories.ISessionRepository, sessionTTL time.Duration) IAuthService {
	return &AuthService{
		userRepository:    users,
		sessionRepository: sessions,
		sessionTTL:        sessionTTL,
	}
}

// Register creates an account and immediately logs it in, returning the new
// session token. An empty username or password fails with ErrMissingField, a
// taken username with ErrUsernameTaken.
func (s *AuthService) Register(username, password string) (Token, error) {
	valReq := auth.CredentialsRequest{
		Username: username,
		Password: password,
	}
	if err := auth.ValidateCredentials(valReq); err != nil {
		return "", err
	}

	if _, err := s.userRepository.CreateUser(username, password); err != nil {
		return "", err // Will propagate ErrUsernameTaken if the name is in use
	}

	token, err := s.sessionRepository.Create(username, s.sessionTTL)
	if err != nil {
		return "", err
	}

	return Token(token), nil
}

// Login verifies credentials and mints a session token.
func (s *AuthService) Login(username, password string) (Token, error) {
	account, err := s.userRepository.GetUser(username)
	if err != nil {
		// Generic error: unknown username and wrong password are
		// indistinguishable to the caller.
		return "", errors.ErrInvalidCredentials
	}

	// Plain string equality, faithful to the site this replaces: passwords
	// are stored as supplied and never hashed.
	if account.Password != password {
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.sessionRepository.Create(username, s.sessionTTL)
	if err != nil {
		return "", err
	}

	return Token(token), nil
}

// Logout destroys the session bound to token. Unknown or already destroyed
// tokens succeed too.
func (s *AuthService) Logout(token Token) error {
	if token == "" {
		return nil
	}
	return s.sessionRepository.Destroy(string(token))
}

// CurrentUser resolves token to the bound username, or reports anonymous.
func (s *AuthService) CurrentUser(token Token) (string, bool) {
	if token == "" {
		return "", false
	}
	username, err := s.sessionRepository.Resolve(string(token))
	if err != nil {
		return "", false
	}
	return username, true
}

// IsAuthenticated reports whether token resolves to a live session.
func (s *AuthService) IsAuthenticated(token Token) bool {
	_, ok := s.CurrentUser(token)
	return ok
}
