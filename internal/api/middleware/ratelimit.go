package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/d60-Lab/social-blog/pkg/cache"
	"github.com/d60-Lab/social-blog/pkg/logger"
	"github.com/d60-Lab/social-blog/pkg/response"
)

// RateLimit 按客户端 IP 限流。
// 有 redis 时用固定窗口计数（多实例共享），否则退化为进程内令牌桶。
func RateLimit(rdb *redis.Client, perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		perMinute = 300
	}
	if rdb != nil {
		return redisRateLimit(rdb, perMinute)
	}
	return localRateLimit(perMinute)
}

func redisRateLimit(rdb *redis.Client, perMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ratelimit:" + c.ClientIP()
		hits, err := cache.Hit(c.Request.Context(), rdb, key, time.Minute)
		if err != nil {
			// redis 故障时放行，不把限流变成单点
			logger.Warn("rate limit counter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if hits > int64(perMinute) {
			response.TooManyRequests(c, "Too many requests")
			return
		}
		c.Next()
	}
}

func localRateLimit(perMinute int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)
	limit := rate.Limit(float64(perMinute) / 60.0)
	burst := perMinute

	return func(c *gin.Context) {
		ip := c.ClientIP()
		mu.Lock()
		l, ok := limiters[ip]
		if !ok {
			l = rate.NewLimiter(limit, burst)
			limiters[ip] = l
		}
		mu.Unlock()

		if !l.Allow() {
			response.TooManyRequests(c, "Too many requests")
			return
		}
		c.Next()
	}
}
