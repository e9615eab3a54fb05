package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyChecker provides replay detection for order submissions,
// backed by Redis. Key format: order:idem:<client-supplied key>
type IdempotencyChecker struct {
	client *redis.Client
}

// NewIdempotencyChecker creates an IdempotencyChecker wrapping the given client.
func NewIdempotencyChecker(client *redis.Client) *IdempotencyChecker {
	return &IdempotencyChecker{client: client}
}

// Seen reports whether an order with this idempotency key was already placed.
func (c *IdempotencyChecker) Seen(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Exists(ctx, c.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("idempotency check: %w", err)
	}
	return n > 0, nil
}

// Mark records that an order with this key has been placed (expires after idempotencyTTL).
func (c *IdempotencyChecker) Mark(ctx context.Context, key string) error {
	return c.client.Set(ctx, c.key(key), "1", idempotencyTTL).Err()
}

func (c *IdempotencyChecker) key(key string) string {
	return "order:idem:" + key
}
