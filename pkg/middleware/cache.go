package middleware

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"

	appcache "github.com/Himan2899/SmartFileOrganizer/pkg/cache"
)

const (
	// DefaultMaxBodyBytes caps cached response bodies. Batch listings and
	// rule blobs are small; anything larger is streamed, not cached.
	DefaultMaxBodyBytes = 1 << 20

	defaultCacheTTL = 30 * time.Second
)

// CacheConfig configures the read-path response cache.
type CacheConfig struct {
	Cache *appcache.Cache // required
	TTL   time.Duration

	// Skipper returns true for requests that must never be cached
	// (health probes, scheduler state, archive downloads).
	Skipper func(*gin.Context) bool

	// BypassHeader lets a client force a fresh read, default X-Cache-Bypass.
	BypassHeader string

	MaxBodyBytes int
}

// DefaultCacheConfig returns the settings used by the organizer's API.
func DefaultCacheConfig(c *appcache.Cache) CacheConfig {
	return CacheConfig{
		Cache:        c,
		TTL:          defaultCacheTTL,
		BypassHeader: "X-Cache-Bypass",
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}

// cachedResponse is the serialized cache record.
type cachedResponse struct {
	Status   int               `json:"s"`
	Header   map[string]string `json:"h,omitempty"`
	Body     []byte            `json:"b,omitempty"`
	ETag     string            `json:"e,omitempty"`
	StoredAt int64             `json:"t"`
}

// CacheMiddleware caches successful GET responses in the injected cache
// (memory or the shared KV store), with ETag / If-None-Match revalidation
// and an X-Cache hit marker. Cache failures never affect the main flow.
func CacheMiddleware(cfg CacheConfig) gin.HandlerFunc {
	if cfg.Cache == nil {
		panic("CacheMiddleware: Cache cannot be nil")
	}

	if cfg.TTL <= 0 {
		cfg.TTL = defaultCacheTTL
	}

	if cfg.BypassHeader == "" {
		cfg.BypassHeader = "X-Cache-Bypass"
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet ||
			(cfg.Skipper != nil && cfg.Skipper(c)) ||
			c.GetHeader(cfg.BypassHeader) != "" {
			c.Next()
			return
		}

		key := cacheKey(c)
		if serveCached(c, cfg, key) {
			return
		}

		cw := &captureWriter{ResponseWriter: c.Writer, max: cfg.MaxBodyBytes}
		c.Writer = cw
		c.Next()
		storeResponse(c, cfg, key, cw)
	}
}

// cacheKey hashes method, route and the sorted query string so that
// ?limit=20&offset=0 and ?offset=0&limit=20 share one entry.
func cacheKey(c *gin.Context) string {
	var b strings.Builder

	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}

	b.WriteString(c.Request.Method)
	b.WriteByte(':')
	b.WriteString(route)

	if q := c.Request.URL.Query(); len(q) > 0 {
		keys := make([]string, 0, len(q))
		for k := range q {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		for _, k := range keys {
			b.WriteByte('&')
			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(strings.Join(q[k], ","))
		}
	}

	return fmt.Sprintf("rc:%x", xxhash.Sum64String(b.String()))
}

func serveCached(c *gin.Context, cfg CacheConfig, key string) bool {
	entry, err := appcache.Get[cachedResponse](c.Request.Context(), cfg.Cache, key)
	if err != nil {
		return false
	}

	h := c.Writer.Header()
	for k, v := range entry.Header {
		h.Set(k, v)
	}

	if entry.ETag != "" {
		h.Set("ETag", entry.ETag)
	}

	h.Set("Age", fmt.Sprintf("%.0f", time.Since(time.Unix(0, entry.StoredAt)).Seconds()))
	h.Set("X-Cache", "HIT")

	if entry.ETag != "" && c.GetHeader("If-None-Match") == entry.ETag {
		c.Status(http.StatusNotModified)
		c.Abort()

		return true
	}

	c.Status(entry.Status)
	_, _ = c.Writer.Write(entry.Body)
	c.Abort()

	return true
}

func storeResponse(c *gin.Context, cfg CacheConfig, key string, cw *captureWriter) {
	if c.Writer.Status() != http.StatusOK || cw.truncated {
		return
	}

	body := cw.buf.Bytes()

	hdr := make(map[string]string, len(c.Writer.Header()))
	for k, v := range c.Writer.Header() {
		if len(v) > 0 {
			hdr[k] = v[0]
		}
	}

	etag := c.Writer.Header().Get("ETag")
	if etag == "" {
		etag = fmt.Sprintf("%q", fmt.Sprintf("%x", xxhash.Sum64(body)))
		c.Writer.Header().Set("ETag", etag)
		hdr["ETag"] = etag
	}

	entry := cachedResponse{
		Status:   http.StatusOK,
		Header:   hdr,
		Body:     body,
		ETag:     etag,
		StoredAt: time.Now().UnixNano(),
	}

	// The request context is cancelled once the handler returns, so the
	// async store runs on a detached context.
	go func(ctx context.Context) {
		_ = appcache.Set(ctx, cfg.Cache, key, entry, cfg.TTL)
	}(context.WithoutCancel(c.Request.Context()))
}

// captureWriter tees the response body up to max bytes.
type captureWriter struct {
	gin.ResponseWriter

	buf       bytes.Buffer
	max       int
	truncated bool
}

func (w *captureWriter) Write(b []byte) (int, error) {
	if !w.truncated {
		remain := w.max - w.buf.Len()
		switch {
		case w.max <= 0:
			w.buf.Write(b)
		case len(b) <= remain:
			w.buf.Write(b)
		default:
			if remain > 0 {
				w.buf.Write(b[:remain])
			}

			w.truncated = true
		}
	}

	return w.ResponseWriter.Write(b)
}
