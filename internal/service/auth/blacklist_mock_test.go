package auth

import (
	"context"
	"sync"
	"time"
)

var _ blacklist = &blacklistMock{}

type blacklistMock struct {
	AddFunc      func(ctx context.Context, tokenID string, ttl time.Duration) error
	ContainsFunc func(ctx context.Context, tokenID string) (bool, error)

	calls struct {
		Add []struct {
			Ctx     context.Context
			TokenID string
			TTL     time.Duration
		}
		Contains []struct {
			Ctx     context.Context
			TokenID string
		}
	}
	lockAdd      sync.RWMutex
	lockContains sync.RWMutex
}

func (mock *blacklistMock) Add(ctx context.Context, tokenID string, ttl time.Duration) error {
	if mock.AddFunc == nil {
		panic("blacklistMock.AddFunc: method is nil but blacklist.Add was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TokenID string
		TTL     time.Duration
	}{Ctx: ctx, TokenID: tokenID, TTL: ttl}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, tokenID, ttl)
}

func (mock *blacklistMock) AddCalls() []struct {
	Ctx     context.Context
	TokenID string
	TTL     time.Duration
} {
	mock.lockAdd.RLock()
	calls := mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *blacklistMock) Contains(ctx context.Context, tokenID string) (bool, error) {
	if mock.ContainsFunc == nil {
		panic("blacklistMock.ContainsFunc: method is nil but blacklist.Contains was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TokenID string
	}{Ctx: ctx, TokenID: tokenID}
	mock.lockContains.Lock()
	mock.calls.Contains = append(mock.calls.Contains, callInfo)
	mock.lockContains.Unlock()
	return mock.ContainsFunc(ctx, tokenID)
}

func (mock *blacklistMock) ContainsCalls() []struct {
	Ctx     context.Context
	TokenID string
} {
	mock.lockContains.RLock()
	calls := mock.calls.Contains
	mock.lockContains.RUnlock()
	return calls
}
