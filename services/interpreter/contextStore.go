package interpreter

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"slaycal/models"

	"github.com/go-redis/redis/v8"
)

const coachContextPrefix = "coach:ctx:"

// ContextStore persists per-session conversation state between chat turns.
type ContextStore interface {
	Get(ctx context.Context, sessionID string) (*models.CoachContext, error)
	Set(ctx context.Context, sessionID string, coachCtx *models.CoachContext) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisContextStore keeps conversation state in Redis with a TTL, so an
// abandoned session expires on its own.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, sessionID string) (*models.CoachContext, error) {
	key := coachContextPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.CoachContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var coachCtx models.CoachContext
	if err := json.Unmarshal([]byte(data), &coachCtx); err != nil {
		return nil, err
	}
	return &coachCtx, nil
}

func (s *RedisContextStore) Set(ctx context.Context, sessionID string, coachCtx *models.CoachContext) error {
	key := coachContextPrefix + sessionID
	b, err := json.Marshal(coachCtx)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, coachContextPrefix+sessionID).Err()
}

// MemoryContextStore keeps conversation state in process memory. Suitable
// for tests and single-node deployments without Redis.
type MemoryContextStore struct {
	mu       sync.RWMutex
	sessions map[string]models.CoachContext
}

func NewMemoryContextStore() *MemoryContextStore {
	return &MemoryContextStore{sessions: make(map[string]models.CoachContext)}
}

func (s *MemoryContextStore) Get(ctx context.Context, sessionID string) (*models.CoachContext, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	coachCtx := s.sessions[sessionID]
	return &coachCtx, nil
}

func (s *MemoryContextStore) Set(ctx context.Context, sessionID string, coachCtx *models.CoachContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = *coachCtx
	return nil
}

func (s *MemoryContextStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
