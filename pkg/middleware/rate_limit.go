package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Himan2899/SmartFileOrganizer/pkg/configs"
)

// RateLimitMiddleware throttles requests with token buckets from
// golang.org/x/time. The key mode decides the bucket granularity:
// "global" (one bucket), "ip", or "header:<Name>" with IP fallback.
func RateLimitMiddleware(cfg configs.RateLimitConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.RPS <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	keyFor := requestKeyFunc(cfg.Key)
	if keyFor == nil {
		limiter := rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst)

		return func(c *gin.Context) {
			if !limiter.Allow() {
				rejectThrottled(c)
				return
			}

			c.Next()
		}
	}

	buckets := newBucketPool(cfg.RPS, cfg.Burst)

	return func(c *gin.Context) {
		if !buckets.get(keyFor(c)).Allow() {
			rejectThrottled(c)
			return
		}

		c.Next()
	}
}

func rejectThrottled(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
}

// requestKeyFunc maps the configured key mode onto a key extractor.
// A nil return means one shared bucket for everything.
func requestKeyFunc(mode string) func(*gin.Context) string {
	mode = strings.ToLower(strings.TrimSpace(mode))

	switch {
	case mode == "" || mode == "global":
		return nil
	case strings.HasPrefix(mode, "header:"):
		header := strings.TrimPrefix(mode, "header:")

		return func(c *gin.Context) string {
			if v := c.GetHeader(header); v != "" {
				return v
			}

			return requestIP(c)
		}
	default: // "ip"
		return requestIP
	}
}

func requestIP(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}

	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}

	return c.Request.RemoteAddr
}

// bucketPool lazily creates one limiter per key and flushes the map when
// it grows past maxBucketEntries to bound memory on hostile key spaces.
type bucketPool struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	rps     float64
	burst   int
}

const (
	bucketFlushInterval = 10 * time.Minute
	maxBucketEntries    = 10000
)

func newBucketPool(rps float64, burst int) *bucketPool {
	p := &bucketPool{
		buckets: make(map[string]*rate.Limiter),
		rps:     rps,
		burst:   burst,
	}

	go p.flushLoop()

	return p
}

func (p *bucketPool) get(key string) *rate.Limiter {
	if key == "" {
		key = "unknown"
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if l, ok := p.buckets[key]; ok {
		return l
	}

	l := rate.NewLimiter(rate.Limit(p.rps), p.burst)
	p.buckets[key] = l

	return l
}

func (p *bucketPool) flushLoop() {
	ticker := time.NewTicker(bucketFlushInterval)
	defer ticker.Stop()

	for range ticker.C {
		p.mu.Lock()
		if len(p.buckets) > maxBucketEntries {
			p.buckets = make(map[string]*rate.Limiter)
		}

		p.mu.Unlock()
	}
}
