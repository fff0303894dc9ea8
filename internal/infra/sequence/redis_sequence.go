package sequence

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisSequence keeps each counter in a single redis key.
type RedisSequence struct {
	client    redis.Cmdable
	keyPrefix string
}

// NewRedisSequence creates a redis-backed service.SequenceGenerator.
func NewRedisSequence(client redis.Cmdable, keyPrefix string) *RedisSequence {
	return &RedisSequence{client: client, keyPrefix: keyPrefix}
}

func (s *RedisSequence) key(name string) string {
	return s.keyPrefix + name
}

// Seed sets the counter only when the key does not exist.
func (s *RedisSequence) Seed(ctx context.Context, name string, start int64) error {
	if err := s.client.SetNX(ctx, s.key(name), start, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to seed sequence %s", name)
	}

	return nil
}

// Next relies on INCR being atomic on the server.
func (s *RedisSequence) Next(ctx context.Context, name string) (int64, error) {
	n, err := s.client.Incr(ctx, s.key(name)).Result()
	if err != nil {
		return 0, errors.Wrapf(err, "failed to increment sequence %s", name)
	}

	return n, nil
}
