package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"smart-todo-backend/pkg/scope"
)

// rateLimiter throttles per key with auto-expiring limiter state.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // max tracked users
			nil,           // no eviction callback
			time.Minute*5, // idle TTL
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// AIRateLimit throttles the generation endpoints per authenticated user.
// Unauthenticated requests are keyed by client IP so the Auth ordering does
// not matter for safety.
func (m Middleware) AIRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		key := c.ClientIP()
		if sc, ok := scope.FromContext(ctx); ok {
			key = sc.UserID
		}

		if !m.aiLimiter.allow(key) {
			m.l.Warnf(ctx, "middleware.AIRateLimit: throttled key=%s", key)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "API 호출 한도가 초과되었습니다. 잠시 후 다시 시도해주세요.",
			})
			return
		}
		c.Next()
	}
}
