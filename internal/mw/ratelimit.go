package mw

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientLimiters hands out one token bucket per client IP.
type clientLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	r        rate.Limit
	b        int
}

func (c *clientLimiters) get(ip string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()
	limiter, ok := c.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(c.r, c.b)
		c.limiters[ip] = limiter
	}
	return limiter
}

// RateLimiter limits each client IP to r requests per second with burst b.
func RateLimiter(r rate.Limit, b int) gin.HandlerFunc {
	limiters := &clientLimiters{limiters: make(map[string]*rate.Limiter), r: r, b: b}
	return func(c *gin.Context) {
		if !limiters.get(c.ClientIP()).Allow() {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}
