package auth

import "github.com/mealdesk/mealdesk-backend/internal/domain"

// AuthResult is returned by register, login, and refresh operations.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, shown to the client exactly once
	User         *domain.User
}
