package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nt-jambaa/toktok-mini-game/internal/clock"
)

func TestSecurityLoggingMiddleware_RateLimiting(t *testing.T) {
	clk := clock.NewManual(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	detector := newDetector(clk)
	handler := SecurityLoggingMiddleware(nil, detector)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/api/v1/farm", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	ip := "192.168.1.100"
	for i := 0; i < RateLimitPerWindow; i++ {
		require.Equal(t, http.StatusOK, send(ip).Code, "request %d", i)
	}

	blocked := send(ip)
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, RetryAfterSeconds, blocked.Header().Get(HeaderRetryAfter))
	assert.Equal(t, RateLimitPerWindow+1, detector.requestCount(ip))

	assert.Equal(t, http.StatusOK, send("192.168.1.101").Code, "other clients are unaffected")

	clk.Advance(RateWindow + time.Second)
	assert.Equal(t, http.StatusOK, send(ip).Code, "a fresh window opens after RateWindow")
	assert.Equal(t, 1, detector.requestCount(ip))
}

func TestSuspiciousActivityDetector_FailedAuthWindow(t *testing.T) {
	clk := clock.NewManual(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	detector := newDetector(clk)

	for i := 0; i < FailedAuthAlertAt; i++ {
		detector.RecordFailedAuth("10.0.0.9")
	}
	w, ok := detector.clients.Peek("10.0.0.9")
	require.True(t, ok)
	assert.Equal(t, FailedAuthAlertAt, w.failedAuth)

	clk.Advance(RateWindow + time.Second)
	detector.RecordFailedAuth("10.0.0.9")
	w, _ = detector.clients.Peek("10.0.0.9")
	assert.Equal(t, 1, w.failedAuth)
}
