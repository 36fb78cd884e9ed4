package service

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedTokenKeyPrefix = "revoked_token:"

// TokenRevoker remembers logged-out token ids until the tokens would have
// expired anyway.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type redisTokenRevoker struct {
	client redis.Cmdable
	now    func() time.Time
}

func NewRedisTokenRevoker(client redis.Cmdable) TokenRevoker {
	return &redisTokenRevoker{client: client, now: time.Now}
}

func (r *redisTokenRevoker) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, revokedTokenKeyPrefix+tokenID, "revoked", ttl).Err()
}

func (r *redisTokenRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedTokenKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MemoryTokenRevoker is the single-process revoker used when Redis is
// disabled.
type MemoryTokenRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryTokenRevoker() *MemoryTokenRevoker {
	return &MemoryTokenRevoker{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (m *MemoryTokenRevoker) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for id, until := range m.revoked {
		if !until.After(now) {
			delete(m.revoked, id)
		}
	}
	if expiresAt.After(now) {
		m.revoked[tokenID] = expiresAt
	}
	return nil
}

func (m *MemoryTokenRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	until, ok := m.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !until.After(m.now()) {
		delete(m.revoked, tokenID)
		return false, nil
	}
	return true, nil
}
