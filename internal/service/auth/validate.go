package auth

import (
	"context"
	"fmt"

	authtoken "github.com/mealdesk/mealdesk-backend/internal/auth"
	"github.com/mealdesk/mealdesk-backend/internal/domain"
)

// ValidateToken verifies an access token's signature and claims and rejects
// tokens that were blacklisted by logout.
func (s *Service) ValidateToken(ctx context.Context, token string) (authtoken.AccessClaims, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return authtoken.AccessClaims{}, domain.ErrUnauthorized
	}

	blocked, err := s.blacklist.Contains(ctx, claims.TokenID)
	if err != nil {
		return authtoken.AccessClaims{}, fmt.Errorf("check token blacklist: %w", err)
	}
	if blocked {
		return authtoken.AccessClaims{}, domain.ErrUnauthorized
	}

	return claims, nil
}
