package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocalLimiter_EvictsIdleBuckets(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	l := newLocalLimiter(2, 60)
	l.now = func() time.Time { return now }

	for i := range 50 {
		l.Allow(string(rune('a' + i%26)) + string(rune('A'+i/26)))
	}

	assert.Len(t, l.buckets, 50)

	now = now.Add(30 * time.Second)
	assert.True(t, l.Allow("active"))
	assert.Len(t, l.buckets, 51)

	now = now.Add(31 * time.Second)
	assert.True(t, l.Allow("active"))
	assert.Len(t, l.buckets, 1)
	assert.Contains(t, l.buckets, "active")
}

func TestLocalLimiter_KeepsBudgetOfActiveClient(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	l := newLocalLimiter(2, 60)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("client"))
	assert.True(t, l.Allow("client"))
	assert.False(t, l.Allow("client"))

	now = now.Add(time.Second)
	l.lastSweep = time.Time{}

	assert.False(t, l.Allow("client"))

	now = now.Add(30 * time.Second)

	assert.True(t, l.Allow("client"))
	assert.False(t, l.Allow("client"))
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		expected   string
	}{
		{name: "remote addr without port", remoteAddr: "192.0.2.10:52114", expected: "192.0.2.10"},
		{name: "ipv6 remote addr", remoteAddr: "[2001:db8::1]:443", expected: "2001:db8::1"},
		{name: "remote addr that is not host port", remoteAddr: "pipe", expected: "pipe"},
		{name: "forwarded for wins", remoteAddr: "10.0.0.1:1", headers: map[string]string{"X-Forwarded-For": " 203.0.113.7 , 10.0.0.1"}, expected: "203.0.113.7"},
		{name: "real ip", remoteAddr: "10.0.0.1:1", headers: map[string]string{"X-Real-IP": "198.51.100.4"}, expected: "198.51.100.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
			req.RemoteAddr = tt.remoteAddr

			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.expected, clientIP(req))
		})
	}
}
