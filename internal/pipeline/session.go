package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultSessionTTL is how long a computed result page stays servable
// without re-running extraction, search and scoring.
const DefaultSessionTTL = 15 * time.Minute

// SessionCache stores computed result pages in Redis so recruiters paging
// back and forth do not burn search and LLM quota.
type SessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionCache wraps a Redis client. A zero ttl uses the default.
func NewSessionCache(client *redis.Client, ttl time.Duration) *SessionCache {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionCache{client: client, ttl: ttl}
}

func sessionKey(query string, page int) string {
	sum := sha256.Sum256([]byte(query))
	return fmt.Sprintf("search:%x:%d", sum, page)
}

// Get returns the cached result page, or nil on a miss.
func (s *SessionCache) Get(ctx context.Context, query string, page int) (*Result, error) {
	data, err := s.client.Get(ctx, sessionKey(query, page)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session cache: %w", err)
	}

	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode cached session: %w", err)
	}
	return &result, nil
}

// Put stores a result page.
func (s *SessionCache) Put(ctx context.Context, query string, page int, result *Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(query, page), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write session cache: %w", err)
	}
	return nil
}
