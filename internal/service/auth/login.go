package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mealdesk/mealdesk-backend/internal/domain"
)

// Login authenticates a user by email and password.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	// 1. Validate input.
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// 2. Find the user. A missing account and a wrong password produce the
	// same error so callers cannot probe which emails are registered.
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	// 3. Verify the password.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		s.log.InfoContext(ctx, "login failed: wrong password", "user_id", user.ID)
		return nil, domain.ErrUnauthorized
	}

	// 4. Issue tokens.
	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user logged in", "user_id", user.ID)
	return result, nil
}
