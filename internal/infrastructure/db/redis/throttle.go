package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const throttleTTL = time.Minute

// MailThrottle rate-limits verification mail per recipient address, backed by
// Redis. Key format: mail:verify:<email>
type MailThrottle struct {
	client *redis.Client
}

// NewMailThrottle creates a MailThrottle wrapping the given Redis client.
func NewMailThrottle(client *redis.Client) *MailThrottle {
	return &MailThrottle{client: client}
}

// IsThrottled reports whether a verification mail was sent to this address
// within the throttle window.
func (t *MailThrottle) IsThrottled(ctx context.Context, email string) (bool, error) {
	n, err := t.client.Exists(ctx, t.key(email)).Result()
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n > 0, nil
}

// Mark records a delivery to this address (expires after throttleTTL).
func (t *MailThrottle) Mark(ctx context.Context, email string) error {
	return t.client.Set(ctx, t.key(email), "1", throttleTTL).Err()
}

func (t *MailThrottle) key(email string) string {
	return "mail:verify:" + email
}
