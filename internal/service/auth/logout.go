package auth

import (
	"context"
	"fmt"
	"time"

	authtoken "github.com/mealdesk/mealdesk-backend/internal/auth"
)

// Logout revokes every refresh token of the user and blacklists the
// presented access token until it expires on its own.
func (s *Service) Logout(ctx context.Context, claims authtoken.AccessClaims) error {
	if err := s.tokens.RevokeAllByUser(ctx, claims.UserID); err != nil {
		return fmt.Errorf("revoke refresh tokens: %w", err)
	}

	ttl := time.Until(claims.ExpiresAt)
	if err := s.blacklist.Add(ctx, claims.TokenID, ttl); err != nil {
		// The refresh tokens are already gone, so the session cannot be
		// extended. Losing the blacklist entry only leaves the access
		// token valid for its remaining TTL.
		s.log.ErrorContext(ctx, "blacklist access token", "user_id", claims.UserID, "error", err)
	}

	s.log.InfoContext(ctx, "user logged out", "user_id", claims.UserID)
	return nil
}
