package httpx

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestIsRetryableHTTPStatus(t *testing.T) {
	for _, code := range []int{408, 429, 500, 502, 599} {
		if !IsRetryableHTTPStatus(code) {
			t.Fatalf("%d should be retryable", code)
		}
	}
	for _, code := range []int{200, 400, 401, 404, 422} {
		if IsRetryableHTTPStatus(code) {
			t.Fatalf("%d should not be retryable", code)
		}
	}
}

type coded struct{ code int }

func (c *coded) Error() string       { return "coded" }
func (c *coded) HTTPStatusCode() int { return c.code }

func TestIsRetryableError(t *testing.T) {
	if IsRetryableError(nil) {
		t.Fatalf("nil error is not retryable")
	}
	if IsRetryableError(context.Canceled) || IsRetryableError(context.DeadlineExceeded) {
		t.Fatalf("context errors must not be retried")
	}
	if !IsRetryableError(&coded{code: 503}) {
		t.Fatalf("503 should be retryable")
	}
	if IsRetryableError(&coded{code: 400}) {
		t.Fatalf("400 should not be retryable")
	}
}

func TestRetryAfterDuration(t *testing.T) {
	resp := &http.Response{Header: http.Header{"Retry-After": []string{"3"}}}
	if got := RetryAfterDuration(resp, time.Second, 10*time.Second); got != 3*time.Second {
		t.Fatalf("expected Retry-After honored, got %v", got)
	}
	if got := RetryAfterDuration(nil, time.Second, 10*time.Second); got != time.Second {
		t.Fatalf("expected fallback without response, got %v", got)
	}
	resp = &http.Response{Header: http.Header{"Retry-After": []string{"3600"}}}
	if got := RetryAfterDuration(resp, time.Second, 10*time.Second); got != 10*time.Second {
		t.Fatalf("expected cap applied, got %v", got)
	}
}

func TestJitterSleepBounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		got := JitterSleep(time.Second)
		if got < 800*time.Millisecond || got > 1200*time.Millisecond {
			t.Fatalf("jitter out of ±20%% bounds: %v", got)
		}
	}
	if got := JitterSleep(0); got != 0 {
		t.Fatalf("non-positive base must sleep zero, got %v", got)
	}
}
