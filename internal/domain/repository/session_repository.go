package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"campus_portal/internal/common"
	"campus_portal/internal/domain/model"

	"github.com/redis/go-redis/v9"
)

// SessionRecord is the persisted session slot, one per session ID. The
// loading flag is deliberately absent: it is transient state and is never
// persisted.
type SessionRecord struct {
	User            *model.User `json:"user"`
	AccessToken     string      `json:"accessToken"`
	RefreshToken    string      `json:"refreshToken"`
	IsAuthenticated bool        `json:"isAuthenticated"`
}

type SessionRepository interface {
	Load(ctx context.Context, sessionID string) (*SessionRecord, error)
	Save(ctx context.Context, sessionID string, rec *SessionRecord) error
	Delete(ctx context.Context, sessionID string) error
}

type RedisSessionRepository struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisSessionRepository(rdb *redis.Client, prefix string, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (r *RedisSessionRepository) key(sessionID string) string {
	return r.prefix + ":" + sessionID
}

func (r *RedisSessionRepository) Load(ctx context.Context, sessionID string) (*SessionRecord, error) {
	raw, err := r.rdb.Get(ctx, r.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, common.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var rec SessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &rec, nil
}

func (r *RedisSessionRepository) Save(ctx context.Context, sessionID string, rec *SessionRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.rdb.Set(ctx, r.key(sessionID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *RedisSessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.rdb.Del(ctx, r.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// InMemorySessionRepository backs tests and single-process development runs.
type InMemorySessionRepository struct {
	mu   sync.RWMutex
	recs map[string]SessionRecord
}

func NewInMemorySessionRepository() *InMemorySessionRepository {
	return &InMemorySessionRepository{recs: make(map[string]SessionRecord)}
}

func (r *InMemorySessionRepository) Load(ctx context.Context, sessionID string) (*SessionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.recs[sessionID]
	if !ok {
		return nil, common.ErrSessionNotFound
	}
	copied := rec
	return &copied, nil
}

func (r *InMemorySessionRepository) Save(ctx context.Context, sessionID string, rec *SessionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recs[sessionID] = *rec
	return nil
}

func (r *InMemorySessionRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.recs, sessionID)
	return nil
}
