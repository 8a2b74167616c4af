package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	authtoken "github.com/mealdesk/mealdesk-backend/internal/auth"
	"github.com/mealdesk/mealdesk-backend/internal/domain"
)

// Refresh rotates a refresh token: the presented token is revoked and a new
// access/refresh pair is issued. Presenting an already-revoked token revokes
// every session of the owning user, since it usually means the token leaked.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	// 1. Validate input.
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// 2. Look up the stored token by hash.
	stored, err := s.tokens.GetByHash(ctx, authtoken.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get refresh token: %w", err)
	}

	// 3. Reject revoked tokens and kill all sessions on reuse.
	if stored.IsRevoked() {
		s.log.WarnContext(ctx, "revoked refresh token reused", "user_id", stored.UserID, "token_id", stored.ID)
		if err := s.tokens.RevokeAllByUser(ctx, stored.UserID); err != nil {
			s.log.ErrorContext(ctx, "revoke all tokens after reuse", "user_id", stored.UserID, "error", err)
		}
		return nil, domain.ErrUnauthorized
	}
	if stored.IsExpired(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	// 4. Load the user.
	user, err := s.users.GetByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	// 5. Rotate: revoke the presented token, then issue a fresh pair.
	if err := s.tokens.RevokeByID(ctx, stored.ID); err != nil {
		return nil, fmt.Errorf("revoke refresh token: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "tokens refreshed", "user_id", user.ID)
	return result, nil
}
