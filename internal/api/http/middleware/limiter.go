package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"

	"github.com/Alijeyrad/portfolio_backend/pkg/contactapi"
)

// NewContactLimiter throttles contact submissions per client IP. Counters live
// in Redis when rdb is set and in process memory otherwise.
func NewContactLimiter(rdb *redis.Client, max int, window time.Duration) fiber.Handler {
	cfg := limiter.Config{
		// sliding window
		Max:               max,
		Expiration:        window,
		LimiterMiddleware: limiter.SlidingWindow{},
		LimitReached: func(c fiber.Ctx) error {
			rid, _ := RequestIDFromFiber(c)
			return c.Status(fiber.StatusTooManyRequests).JSON(contactapi.ErrorResponse{
				Error:     "Too many messages, please try again later",
				RequestID: rid,
			})
		},
	}
	if rdb != nil {
		cfg.Storage = fiberredis.NewFromConnection(rdb)
	}
	return limiter.New(cfg)
}
