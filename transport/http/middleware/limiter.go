package middleware

import (
	"math"
	"net"
	"net/http"
	"reservo/shared"
	"reservo/shared/constant"
	"reservo/transport/http/response"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	cacheKeyRateLimit = "limiter"
)

// RateLimit counts requests per client in a fixed Redis window. While Redis is
// unreachable each instance falls back to its own token bucket with the same budget.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds

			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, clientIP(r), userAgent(r))

			count, err := a.cache.Increment(r.Context(), cacheKey, windowSecs)
			if err != nil {
				log.Ctx(r.Context()).Warn().Err(err).Msg("rate limiter store unavailable, using local limiter")

				if !a.fallback.Allow(cacheKey) {
					response.WithRequestLimitExceeded(w)

					return
				}

				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-int(count))))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			if int(count) > maxReqs {
				if ttl, err := a.cache.TTL(r.Context(), cacheKey); err == nil && ttl > 0 {
					w.Header().Set(constant.RequestHeaderRetryAfter, strconv.Itoa(int(math.Ceil(ttl.Seconds()))))
				}

				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// localLimiter keeps one token bucket per client key. A bucket idle for a whole
// window has refilled completely, so dropping it loses no state.
type localLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	idleAfter time.Duration
	lastSweep time.Time
	buckets   map[string]*bucket
	now       func() time.Time
}

func newLocalLimiter(maxReqs, windowSecs int) *localLimiter {
	limit := rate.Inf
	if maxReqs > 0 && windowSecs > 0 {
		limit = rate.Limit(float64(maxReqs) / float64(windowSecs))
	}

	return &localLimiter{
		limit:     limit,
		burst:     max(maxReqs, 1),
		idleAfter: time.Duration(max(windowSecs, 1)) * time.Second,
		buckets:   map[string]*bucket{},
		now:       time.Now,
	}
}

func (l *localLimiter) Allow(key string) bool {
	l.mu.Lock()
	now := l.now()

	if now.Sub(l.lastSweep) >= l.idleAfter {
		l.evictIdle(now)
	}

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}

	b.lastSeen = now
	l.mu.Unlock()

	return b.limiter.AllowN(now, 1)
}

// evictIdle must be called with mu held.
func (l *localLimiter) evictIdle(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) >= l.idleAfter {
			delete(l.buckets, key)
		}
	}

	l.lastSweep = now
}

func userAgent(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

func clientIP(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs, take the first one
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
