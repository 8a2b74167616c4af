package auth

import (
	"net/mail"
	"strings"

	"github.com/mealdesk/mealdesk-backend/internal/domain"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt input limit
	minUsernameLength = 3
	maxUsernameLength = 50
)

// RegisterInput carries the data needed to create a new account.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// Validate checks the input and returns a domain.ValidationError if invalid.
func (in *RegisterInput) Validate() error {
	var fields []domain.FieldError

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Email == "" {
		fields = append(fields, domain.FieldError{Field: "email", Message: "is required"})
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		fields = append(fields, domain.FieldError{Field: "email", Message: "is not a valid email address"})
	}

	in.Username = strings.TrimSpace(in.Username)
	if l := len(in.Username); l < minUsernameLength || l > maxUsernameLength {
		fields = append(fields, domain.FieldError{Field: "username", Message: "must be between 3 and 50 characters"})
	}

	if l := len(in.Password); l < minPasswordLength || l > maxPasswordLength {
		fields = append(fields, domain.FieldError{Field: "password", Message: "must be between 8 and 72 characters"})
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

// LoginInput carries credentials for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate checks the input and returns a domain.ValidationError if invalid.
func (in *LoginInput) Validate() error {
	var fields []domain.FieldError

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Email == "" {
		fields = append(fields, domain.FieldError{Field: "email", Message: "is required"})
	}
	if in.Password == "" {
		fields = append(fields, domain.FieldError{Field: "password", Message: "is required"})
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

// RefreshInput carries a raw refresh token for rotation.
type RefreshInput struct {
	RefreshToken string
}

// Validate checks the input and returns a domain.ValidationError if invalid.
func (in *RefreshInput) Validate() error {
	if strings.TrimSpace(in.RefreshToken) == "" {
		return domain.NewValidationError("refresh_token", "is required")
	}
	return nil
}
