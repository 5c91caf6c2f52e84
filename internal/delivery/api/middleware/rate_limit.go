package middleware

import (
	"net/http"
	"sync"
	"time"

	"tankwatch/config"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const rateLimiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware limits requests per client IP with a token bucket
type RateLimitMiddleware struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	clients  map[string]*clientLimiter
	lastScan time.Time
	now      func() time.Time
}

// NewRateLimitMiddleware creates a per-IP limiter from the rateLimit config section
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limit:   rate.Limit(cfg.RateLimit.RPS),
		burst:   cfg.RateLimit.Burst,
		clients: make(map[string]*clientLimiter),
		now:     time.Now,
	}
}

// Limit rejects requests beyond the client's budget with a plain 429.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.allow(c.RealIP()) {
			return c.String(http.StatusTooManyRequests, "Too Many Requests.")
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) allow(clientIP string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.evictIdle(now)

	client, ok := m.clients[clientIP]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.clients[clientIP] = client
	}
	client.lastSeen = now

	return client.limiter.AllowN(now, 1)
}

// evictIdle drops limiters unused for rateLimiterIdleTTL. Caller holds mu.
func (m *RateLimitMiddleware) evictIdle(now time.Time) {
	if now.Sub(m.lastScan) < rateLimiterIdleTTL {
		return
	}
	m.lastScan = now

	for ip, client := range m.clients {
		if now.Sub(client.lastSeen) > rateLimiterIdleTTL {
			delete(m.clients, ip)
		}
	}
}
