package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"nayawear-bot/pkg/redis"
)

// RedisStore keeps sessions in Redis as JSON blobs with a TTL, so abandoned
// sessions eventually expire. Selected when REDIS_ADDR is configured.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisStore) Get(ctx context.Context, chatID int64) (*Session, error) {
	data, err := s.client.Get(ctx, buildSessionKey(chatID))
	if errors.Is(err, redis.ErrNil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &sess, nil
}

func (s *RedisStore) Set(ctx context.Context, chatID int64, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := s.client.Set(ctx, buildSessionKey(chatID), data, s.ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, chatID int64) error {
	if err := s.client.Del(ctx, buildSessionKey(chatID)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func buildSessionKey(chatID int64) string {
	return fmt.Sprintf("session:%d", chatID)
}

var _ Store = (*RedisStore)(nil)
