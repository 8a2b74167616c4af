package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mealdesk/mealdesk-backend/internal/domain"
)

// Register creates a new account and signs the user in.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// 1. Validate input.
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// 2. Hash the password.
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 3. Create the user. Unique violations on email or username surface
	// as domain.ErrAlreadyExists from the repository.
	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	// 4. Issue tokens.
	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user registered", "user_id", user.ID, "email", user.Email)
	return result, nil
}
