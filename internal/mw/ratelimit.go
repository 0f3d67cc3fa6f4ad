package mw

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// limiterIdle is how long an address's limiter survives without requests.
const limiterIdle = 10 * time.Minute

// ClientLimiters hands out one token bucket per client address. Buckets of
// idle clients expire so the set does not grow without bound.
type ClientLimiters struct {
	mu       sync.Mutex
	limiters *cache.Cache
	limit    rate.Limit
	burst    int
}

// NewClientLimiters creates the per-client bucket set.
func NewClientLimiters(limit rate.Limit, burst int) *ClientLimiters {
	return &ClientLimiters{
		limiters: cache.New(limiterIdle, limiterIdle),
		limit:    limit,
		burst:    burst,
	}
}

// For returns the bucket of addr, creating it on first use.
func (l *ClientLimiters) For(addr string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if v, ok := l.limiters.Get(addr); ok {
		lim := v.(*rate.Limiter)
		l.limiters.SetDefault(addr, lim)
		return lim
	}
	lim := rate.NewLimiter(l.limit, l.burst)
	l.limiters.SetDefault(addr, lim)
	return lim
}

// RateLimit rejects requests beyond the client's bucket with 429.
func RateLimit(limit rate.Limit, burst int) gin.HandlerFunc {
	limiters := NewClientLimiters(limit, burst)
	return func(c *gin.Context) {
		if !limiters.For(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
