package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAuthRateLimiterBursts(t *testing.T) {
	limiter := NewAuthRateLimiter(3)

	handler := limiter.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	serve := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	for i := 0; i < 3; i++ {
		if code := serve("10.0.0.1:1000"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, code)
		}
	}

	if code := serve("10.0.0.1:1000"); code != http.StatusTooManyRequests {
		t.Errorf("expected burst to be exhausted, got %d", code)
	}

	// A different client has its own budget.
	if code := serve("10.0.0.2:1000"); code != http.StatusOK {
		t.Errorf("expected fresh client to pass, got %d", code)
	}
}

func TestAuthRateLimiterRetryAfterHeader(t *testing.T) {
	limiter := NewAuthRateLimiter(1)

	handler := limiter.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.1:1000"
	handler.ServeHTTP(httptest.NewRecorder(), req)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rr.Code)
	}
	if rr.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header on throttled response")
	}
}

func TestAuthRateLimiterDefaultsInvalidConfig(t *testing.T) {
	limiter := NewAuthRateLimiter(0)
	if limiter.perMinute != 10 {
		t.Errorf("expected default of 10 per minute, got %d", limiter.perMinute)
	}
}
