package errors

import "fmt"

// Sentinel errors shared between the core services and the web layer.
// The core never formats user-facing text; the handlers own the wording.
var (
	ErrUsernameTaken      = fmt.Errorf("username already taken")
	ErrMissingField       = fmt.Errorf("username and password are required")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrNotAuthenticated   = fmt.Errorf("not authenticated")
	ErrEmptyComment       = fmt.Errorf("comment text is empty")
	ErrSessionNotFound    = fmt.Errorf("session not found")
)
