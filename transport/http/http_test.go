package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reservo/config"
	"reservo/infras/otel/mocks"
	cacheMocks "reservo/shared/cache/mocks"
	"reservo/transport/http/middleware"
	"reservo/transport/http/router"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeDatabase struct {
	pingErr error
	closed  bool
}

func (f *fakeDatabase) Ping(_ context.Context) error {
	return f.pingErr
}

func (f *fakeDatabase) Close() {
	f.closed = true
}

func newTestServer(t *testing.T, db Database) *HTTP {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Name = "reservo"

	ctrl := gomock.NewController(t)
	mw := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cacheMocks.NewMockRedisCache(ctrl))

	return New(cfg, router.New(router.DomainHandlers{}), mw, db, mocks.NewOtel())
}

func do(t *testing.T, handler http.Handler, method, target string) (int, string) {
	t.Helper()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	var env struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return rec.Code, env.Message
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name            string
		pingErr         error
		state           ServerState
		expectedCode    int
		expectedMessage string
	}{
		{name: "ready", state: ServerStateReady, expectedCode: http.StatusOK, expectedMessage: "OK"},
		{name: "database down", pingErr: errors.New("connection refused"), state: ServerStateReady, expectedCode: http.StatusServiceUnavailable, expectedMessage: "Server is unhealthy."},
		{name: "grace period", state: ServerStateInGracePeriod, expectedCode: http.StatusServiceUnavailable, expectedMessage: "Server is preparing to shut down."},
		{name: "cleanup period", state: ServerStateInCleanupPeriod, expectedCode: http.StatusServiceUnavailable, expectedMessage: "Server is preparing to shut down."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, &fakeDatabase{pingErr: tt.pingErr})
			handler := server.Handler()
			server.setState(tt.state)

			code, message := do(t, handler, http.MethodGet, "/health")

			assert.Equal(t, tt.expectedCode, code)
			assert.Equal(t, tt.expectedMessage, message)
		})
	}
}

func TestHandler_SetsReadyOnce(t *testing.T) {
	server := newTestServer(t, &fakeDatabase{})

	assert.Equal(t, ServerState(0), server.State())

	first := server.Handler()
	assert.Equal(t, ServerStateReady, server.State())

	server.setState(ServerStateInGracePeriod)
	second := server.Handler()

	assert.Same(t, first, second)
	assert.Equal(t, ServerStateInGracePeriod, server.State())
}

func TestHandler_Envelopes(t *testing.T) {
	handler := newTestServer(t, &fakeDatabase{}).Handler()

	code, message := do(t, handler, http.MethodGet, "/api/unknown")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Resource not found.", message)

	code, message = do(t, handler, http.MethodGet, "/api/bookings/abc")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Resource not found.", message)

	code, message = do(t, handler, http.MethodDelete, "/api/bookings")
	assert.Equal(t, http.StatusMethodNotAllowed, code)
	assert.Equal(t, "Method not allowed.", message)
}

func TestHandler_RejectsInCleanup(t *testing.T) {
	server := newTestServer(t, &fakeDatabase{})
	handler := server.Handler()

	server.setState(ServerStateInGracePeriod)

	code, _ := do(t, handler, http.MethodGet, "/api/unknown")
	assert.Equal(t, http.StatusNotFound, code)

	server.setState(ServerStateInCleanupPeriod)

	code, message := do(t, handler, http.MethodGet, "/api/unknown")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "Server is preparing to shut down.", message)
}

func TestHandler_RequestID(t *testing.T) {
	handler := newTestServer(t, &fakeDatabase{}).Handler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}
