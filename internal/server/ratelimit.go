package server

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"boxgym/internal/api"
	"boxgym/internal/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const visitorTTL = 3 * time.Minute

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	ttl      time.Duration
	now      func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a limiter allowing rps requests per second with the given burst.
// Non-positive rps disables limiting.
func NewRateLimiter(rps float64, burst int, ttl time.Duration) *RateLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     limit,
		burst:    burst,
		ttl:      ttl,
		now:      time.Now,
	}
}

// sweep drops visitors idle for longer than ttl.
func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.ttl)
	for ip, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, ip)
		}
	}
}

func (rl *RateLimiter) getVisitor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = rl.now()
	return v.limiter
}

func (rl *RateLimiter) Allow(ip string) bool {
	return rl.getVisitor(ip).Allow()
}

// retryAfter is the whole number of seconds until the next token for ip.
func (rl *RateLimiter) retryAfter(ip string) int {
	r := rl.getVisitor(ip).Reserve()
	defer r.Cancel()
	return int(math.Ceil(r.Delay().Seconds()))
}

// RateLimitMiddleware creates a rate limiting middleware
func RateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	limiter := NewRateLimiter(rps, burst, visitorTTL)

	var lastSweep time.Time
	var sweepMu sync.Mutex

	return func(c *gin.Context) {
		sweepMu.Lock()
		if time.Since(lastSweep) > time.Minute {
			lastSweep = time.Now()
			limiter.sweep()
		}
		sweepMu.Unlock()

		ip := c.ClientIP()
		if !limiter.Allow(ip) {
			wait := limiter.retryAfter(ip)
			if wait < 1 {
				wait = 1
			}
			logger.Warn("Rate limit exceeded", "client_ip", ip, "path", c.Request.URL.Path)
			c.Header("Retry-After", strconv.Itoa(wait))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api.ErrorResponse{Error: "Too many requests, please slow down"})
			return
		}
		c.Next()
	}
}
