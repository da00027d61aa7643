package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// WithdrawalRateLimit caps withdrawal attempts per tax identifier (or IP as
// fallback) using Redis if available, slowing down PIN guessing.
func WithdrawalRateLimit(cache *redis.Client, maxPerMin int) fiber.Handler {
	if maxPerMin <= 0 {
		maxPerMin = 5
	}
	return func(c *fiber.Ctx) error {
		if cache == nil {
			return c.Next() // no-op without Redis
		}
		var req struct {
			TaxID string `json:"tax_id"`
		}
		_ = c.BodyParser(&req)
		taxID := strings.TrimSpace(req.TaxID)
		if taxID == "" {
			taxID = c.IP()
		}
		key := "rl:withdraw:" + taxID
		cnt, err := cache.Incr(c.UserContext(), key).Result()
		if err == nil && cnt == 1 {
			cache.Expire(c.UserContext(), key, time.Minute)
		}
		if err != nil {
			return c.Next() // fail-open on cache errors
		}
		if cnt > int64(maxPerMin) {
			return fiber.NewError(http.StatusTooManyRequests, "too many withdrawal attempts, try again later")
		}
		return c.Next()
	}
}
