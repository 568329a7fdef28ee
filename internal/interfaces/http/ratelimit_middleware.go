package http

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/mrsetia1/flowmint/internal/application/dto"
)

// RateLimitConfig parameters for the per-key token bucket.
type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
	Burst             int
}

// LoginLimit is the profile for the login endpoint: brute-force protection,
// 5 attempts per minute per client IP.
var LoginLimit = RateLimitConfig{
	RequestsPerWindow: 5,
	Window:            time.Minute,
	Burst:             5,
}

// keyedLimiter holds one rate.Limiter per key with periodic cleanup so
// ephemeral client IPs do not accumulate forever.
type keyedLimiter struct {
	limiters    sync.Map // map[string]*rate.Limiter
	rate        rate.Limit
	burst       int
	mu          sync.Mutex
	lastCleanup time.Time
}

func (kl *keyedLimiter) get(key string) *rate.Limiter {
	if l, ok := kl.limiters.Load(key); ok {
		return l.(*rate.Limiter)
	}
	l, _ := kl.limiters.LoadOrStore(key, rate.NewLimiter(kl.rate, kl.burst))
	kl.maybeCleanup()
	return l.(*rate.Limiter)
}

func (kl *keyedLimiter) maybeCleanup() {
	kl.mu.Lock()
	defer kl.mu.Unlock()
	if time.Since(kl.lastCleanup) < 5*time.Minute {
		return
	}
	kl.lastCleanup = time.Now()
	// A limiter with a full bucket has been idle for at least a window.
	kl.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(kl.burst) {
			kl.limiters.Delete(key)
		}
		return true
	})
}

// RateLimitByIP limits requests per client IP with the given profile,
// answering 429 with a Retry-After header once the bucket is empty.
func RateLimitByIP(cfg RateLimitConfig) fiber.Handler {
	kl := &keyedLimiter{
		rate:        rate.Limit(float64(cfg.RequestsPerWindow) / cfg.Window.Seconds()),
		burst:       cfg.Burst,
		lastCleanup: time.Now(),
	}
	return func(c *fiber.Ctx) error {
		limiter := kl.get(clientIP(c))
		if !limiter.Allow() {
			res := limiter.Reserve()
			delay := res.Delay()
			res.Cancel()
			retryAfter := int(delay.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retryAfter))
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Error: "Too many requests"})
		}
		return c.Next()
	}
}

// clientIP resolves the client address behind proxies: first hop of
// X-Forwarded-For, then X-Real-IP, then the socket address.
func clientIP(c *fiber.Ctx) string {
	if xff := c.Get("X-Forwarded-For"); xff != "" {
		if i := strings.IndexByte(xff, ','); i >= 0 {
			return strings.TrimSpace(xff[:i])
		}
		return strings.TrimSpace(xff)
	}
	if xri := c.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	return c.IP()
}
