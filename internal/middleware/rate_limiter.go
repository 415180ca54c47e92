package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"lexhub_backend/internal/logger"
	"lexhub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimiter решает, пропустить ли очередной запрос по ключу
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// ============================================================================
// In-memory (одна реплика)
// ============================================================================

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryRateLimiter - token bucket на ключ. Простаивающие ключи вычищаются.
type MemoryRateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	every     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewMemoryRateLimiter(requests int, window time.Duration) *MemoryRateLimiter {
	if requests < 1 {
		requests = 1
	}
	return &MemoryRateLimiter{
		visitors: make(map[string]*visitor),
		every:    rate.Every(window / time.Duration(requests)),
		burst:    requests,
		idleTTL:  window,
		now:      time.Now,
	}
}

func (l *MemoryRateLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.every, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1), nil
}

// sweep: ключ, простоявший окно целиком, успел бы полностью восстановиться
func (l *MemoryRateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idleTTL {
		return
	}
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) >= l.idleTTL {
			delete(l.visitors, key)
		}
	}
	l.lastSweep = now
}

// ============================================================================
// Redis (общий лимит на несколько реплик)
// ============================================================================

// RedisRateLimiter - фиксированное окно: INCR + EXPIRE на первом запросе
type RedisRateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	prefix string
}

func NewRedisRateLimiter(client *redis.Client, limit int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		limit:  limit,
		window: window,
		prefix: "ratelimit",
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("%s:%s", l.prefix, key)
	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(l.limit), nil
}

// ============================================================================
// Middleware
// ============================================================================

// RateLimitMiddleware ограничивает запросы по IP в рамках scope.
// Если хранилище лимитов недоступно, запрос пропускается.
func RateLimitMiddleware(limiter RateLimiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ip := c.ClientIP()

		allowed, err := limiter.Allow(ctx, scope+":"+ip)
		if err != nil {
			logger.CtxWithError(ctx, "Rate limiter unavailable, letting request through", err, "scope", scope)
			c.Next()
			return
		}
		if !allowed {
			logger.CtxWarn(ctx, "Rate limit exceeded", "ip", ip, "scope", scope)
			apperrors.HandleError(c, apperrors.ErrRateLimited)
			return
		}
		c.Next()
	}
}
