package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mealdesk/mealdesk-backend/internal/auth"
	"github.com/mealdesk/mealdesk-backend/pkg/ctxutil"
)

// TokenValidator checks an access token and returns its claims.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (auth.AccessClaims, error)
}

type claimsCtxKey struct{}

// AccessClaimsFromCtx returns the validated token claims stored by Auth.
// Logout reads them to blacklist the presented token.
func AccessClaimsFromCtx(ctx context.Context) (auth.AccessClaims, bool) {
	claims, ok := ctx.Value(claimsCtxKey{}).(auth.AccessClaims)
	return claims, ok
}

// Auth validates a Bearer token when one is present and stores the user ID
// and token claims in the request context. Requests without a token pass
// through anonymously; handlers decide whether authentication is required.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			claims, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), claims.UserID)
			ctx = context.WithValue(ctx, claimsCtxKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
