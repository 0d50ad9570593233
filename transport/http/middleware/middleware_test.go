package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"reservo/config"
	"reservo/infras/otel/mocks"
	cacheMocks "reservo/shared/cache/mocks"
	"reservo/shared/constant"
	"reservo/transport/http/middleware"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func limiterConfig(enable bool, maxReqs int) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = maxReqs
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func newRequest() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	req.Header.Set("User-Agent", "staff-console")
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	return req
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name              string
		enable            bool
		setupMock         func(c *cacheMocks.MockRedisCache)
		expectedCode      int
		expectedRemaining string
		expectedRetry     string
	}{
		{
			name:         "disabled",
			enable:       false,
			setupMock:    func(_ *cacheMocks.MockRedisCache) {},
			expectedCode: http.StatusOK,
		},
		{
			name:   "first request in window",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), "limiter:203.0.113.7:staff-console", 60).Return(int64(1), nil)
			},
			expectedCode:      http.StatusOK,
			expectedRemaining: "2",
		},
		{
			name:   "last allowed request",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(3), nil)
			},
			expectedCode:      http.StatusOK,
			expectedRemaining: "0",
		},
		{
			name:   "over the limit",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(4), nil)
				c.EXPECT().TTL(gomock.Any(), gomock.Any()).Return(1500*time.Millisecond, nil)
			},
			expectedCode:      http.StatusTooManyRequests,
			expectedRemaining: "0",
			expectedRetry:     "2",
		},
		{
			name:   "over the limit without ttl",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(5), nil)
				c.EXPECT().TTL(gomock.Any(), gomock.Any()).Return(time.Duration(0), errors.New("redis: timeout"))
			},
			expectedCode:      http.StatusTooManyRequests,
			expectedRemaining: "0",
		},
		{
			name:   "store down uses local limiter",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(0), errors.New("redis: connection refused"))
			},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(mockCache)

			mw := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(tt.enable, 3), mockCache)

			rec := httptest.NewRecorder()
			mw.RateLimit()(okHandler()).ServeHTTP(rec, newRequest())

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedRemaining, rec.Header().Get("X-RateLimit-Remaining"))
			assert.Equal(t, tt.expectedRetry, rec.Header().Get("Retry-After"))
		})
	}
}

func TestRateLimit_LocalFallbackEnforcesBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("redis down")).Times(3)

	handler := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(true, 2), mockCache).RateLimit()(okHandler())

	codes := []int{}

	for range 3 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, newRequest())
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_KeyIgnoresClientPort(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Increment(gomock.Any(), "limiter:192.0.2.10:staff-console", 60).Return(int64(1), nil).Times(2)

	handler := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(true, 3), mockCache).RateLimit()(okHandler())

	for _, addr := range []string{"192.0.2.10:50001", "192.0.2.10:50002"} {
		req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
		req.Header.Set("User-Agent", "staff-console")
		req.RemoteAddr = addr

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRequestID(t *testing.T) {
	mw := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)

	t.Run("keeps incoming id", func(t *testing.T) {
		var seen string

		handler := mw.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "abc-123")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
		assert.Equal(t, "abc-123", seen)
	})

	t.Run("mints an id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mw.RequestID(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, rec.Header().Get("X-Request-ID"), 36)
	})

}

func TestTracing_PassesThrough(t *testing.T) {
	mw := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)

	handler := mw.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://staff.example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPatch}

	mw := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	req.Header.Set("Origin", "https://staff.example.com")

	rec := httptest.NewRecorder()
	mw.CORS()(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, "https://staff.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Disabled(t *testing.T) {
	mw := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	req.Header.Set("Origin", "https://elsewhere.example.com")

	rec := httptest.NewRecorder()
	mw.CORS()(okHandler()).ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
