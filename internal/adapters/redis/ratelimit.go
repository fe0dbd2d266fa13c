package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/kruglovma/sklad/internal/adapters/http/middleware"
)

// Fixed-window counter: the first INCR in a window creates the key and
// arms its expiry, so an abandoned key always ages out.
var rateLimitScript = goredis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
	redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`)

type RateLimiter struct {
	client *Client
}

func NewRateLimiter(client *Client) middleware.RateLimiter {
	return &RateLimiter{client: client}
}

func (r *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	count, err := rateLimitScript.Run(ctx, r.client.rdb, []string{"sklad:ratelimit:" + key}, int(window.Seconds())).Int()
	if err != nil {
		return false, err
	}
	return count <= limit, nil
}
