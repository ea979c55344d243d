package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/fitpro/fitpro-api/internal/core/domain"
)

const sessionKey = "fitpro:session"

// SessionStore persists the single active session as a JSON value under a
// fixed key. Absent key means logged out; undecodable data is reported as
// malformed so the caller can discard it.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Save(ctx context.Context, session *domain.Session) error {
	b, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey, b, 0).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *SessionStore) Load(ctx context.Context) (*domain.Session, error) {
	b, err := s.client.Get(ctx, sessionKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(b, &session); err != nil {
		return nil, domain.ErrMalformedSession
	}
	return &session, nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
