package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/dondeestakoko/easemyday/config"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}

func testRouter(cfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := New(mockLogger{}, cfg)
	r := gin.New()
	r.Use(m.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func doRequest(r *gin.Engine, addr string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = addr
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitBurstThenReject(t *testing.T) {
	r := testRouter(config.RateLimitConfig{RequestsPerMin: 60, Burst: 3})

	for i := 0; i < 3; i++ {
		if code := doRequest(r, "10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("request %d: code = %d, want 200", i, code)
		}
	}
	if code := doRequest(r, "10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Errorf("over-budget request: code = %d, want 429", code)
	}
}

func TestRateLimitIsPerClient(t *testing.T) {
	r := testRouter(config.RateLimitConfig{RequestsPerMin: 60, Burst: 1})

	if code := doRequest(r, "10.0.0.1:1234"); code != http.StatusOK {
		t.Fatalf("first client: code = %d", code)
	}
	if code := doRequest(r, "10.0.0.1:5678"); code != http.StatusTooManyRequests {
		t.Errorf("same IP different port must share the bucket: code = %d", code)
	}
	if code := doRequest(r, "10.0.0.2:1234"); code != http.StatusOK {
		t.Errorf("other client must have its own bucket: code = %d", code)
	}
}

func TestRateLimitConcurrentFirstRequestsShareBucket(t *testing.T) {
	// With a 1 token/s refill, extra admissions within the test's lifetime
	// can only come from separate buckets minted by a get-or-create race.
	rl := newRateLimiter(60, 1)

	const workers = 16
	var wg sync.WaitGroup
	var allowed atomic.Int32

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow("10.0.0.1") {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := allowed.Load(); got != 1 {
		t.Errorf("allowed = %d, want 1 (single shared bucket)", got)
	}
}

func TestRateLimitHonorsForwardedFor(t *testing.T) {
	r := testRouter(config.RateLimitConfig{RequestsPerMin: 60, Burst: 1})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("forwarded client must share its bucket: code = %d", w.Code)
	}
}
