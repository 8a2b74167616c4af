package middleware

import (
	"context"
	"sync"

	"github.com/mealdesk/mealdesk-backend/internal/auth"
)

var _ TokenValidator = &TokenValidatorMock{}

type TokenValidatorMock struct {
	ValidateTokenFunc func(ctx context.Context, token string) (auth.AccessClaims, error)

	calls struct {
		ValidateToken []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockValidateToken sync.RWMutex
}

func (mock *TokenValidatorMock) ValidateToken(ctx context.Context, token string) (auth.AccessClaims, error) {
	if mock.ValidateTokenFunc == nil {
		panic("TokenValidatorMock.ValidateTokenFunc: method is nil but TokenValidator.ValidateToken was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockValidateToken.Lock()
	mock.calls.ValidateToken = append(mock.calls.ValidateToken, callInfo)
	mock.lockValidateToken.Unlock()
	return mock.ValidateTokenFunc(ctx, token)
}

func (mock *TokenValidatorMock) ValidateTokenCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockValidateToken.RLock()
	calls := mock.calls.ValidateToken
	mock.lockValidateToken.RUnlock()
	return calls
}
