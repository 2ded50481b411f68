package auth

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"comment-board/errors"
)

var validate = validator.New()

// CredentialsRequest carries the username/password pair supplied at
// registration or login.
type CredentialsRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// ValidateCredentials rejects input with an absent username or password.
// There are no format or complexity rules: any non-empty pair is accepted,
// and usernames are compared case-sensitively elsewhere.
func ValidateCredentials(req CredentialsRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrMissingField, err)
	}
	return nil
}
