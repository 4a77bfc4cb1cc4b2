package persist

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// keyPrefix namespaces the persisted blobs.
	keyPrefix = "showreel:"
	// changePrefix namespaces the pub/sub channels carrying change events.
	changePrefix = "showreel:changes:"
)

// BlobKey returns the Redis key holding the blob for key.
func BlobKey(key string) string {
	return keyPrefix + key
}

// ChangeChannel returns the pub/sub channel announcing writes to key.
func ChangeChannel(key string) string {
	return changePrefix + key
}

// RedisAdapter is the remote realtime strategy: blobs live under namespaced
// keys and every write is announced on a per-key pub/sub channel so other
// instances converge on the latest snapshot.
type RedisAdapter struct {
	client *redis.Client
}

// NewRedisAdapter creates a Redis-backed adapter.
func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

// Load reads the blob for key; a missing key reports ok=false with no error.
func (a *RedisAdapter) Load(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := a.client.Get(ctx, BlobKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return data, true, nil
}

// Write stores the blob and publishes the new value on the change channel.
// Subscribers receive the payload itself, so they converge without a
// follow-up read.
func (a *RedisAdapter) Write(ctx context.Context, key string, value []byte) error {
	pipe := a.client.Pipeline()
	pipe.Set(ctx, BlobKey(key), value, 0)
	pipe.Publish(ctx, ChangeChannel(key), value)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Subscribe opens a standing pub/sub listener on the change channel for key.
// fn runs on the subscription goroutine; the returned stop closes the
// subscription.
func (a *RedisAdapter) Subscribe(ctx context.Context, key string, fn func([]byte)) (func(), error) {
	sub := a.client.Subscribe(ctx, ChangeChannel(key))

	// Confirm the subscription before returning so writes issued after
	// Subscribe are guaranteed to be observed.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", key, err)
	}

	ch := sub.Channel()
	go func() {
		for msg := range ch {
			fn([]byte(msg.Payload))
		}
	}()

	return func() { _ = sub.Close() }, nil
}

// Close closes the underlying client.
func (a *RedisAdapter) Close() error {
	return a.client.Close()
}
