package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterAllowConsumesBurst(t *testing.T) {
	current := time.Unix(0, 0)
	limiter := NewRateLimiter(func() time.Time { return current })
	rule := RateLimitRule{Rate: 1, Burst: 2}

	for i := 0; i < 2; i++ {
		allowed, _ := limiter.Allow("u|g", rule)
		if !allowed {
			t.Fatalf("expected request %d within burst to be allowed", i)
		}
	}
	allowed, wait := limiter.Allow("u|g", rule)
	if allowed {
		t.Fatalf("expected request beyond burst to be rejected")
	}
	if wait <= 0 {
		t.Fatalf("expected positive retry-after, got %v", wait)
	}
}

func TestRateLimiterRefills(t *testing.T) {
	current := time.Unix(0, 0)
	limiter := NewRateLimiter(func() time.Time { return current })
	rule := RateLimitRule{Rate: 1, Burst: 1}

	if allowed, _ := limiter.Allow("u|g", rule); !allowed {
		t.Fatalf("expected first request allowed")
	}
	if allowed, _ := limiter.Allow("u|g", rule); allowed {
		t.Fatalf("expected second immediate request rejected")
	}

	current = current.Add(2 * time.Second)
	if allowed, _ := limiter.Allow("u|g", rule); !allowed {
		t.Fatalf("expected request after refill to be allowed")
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	current := time.Unix(0, 0)
	limiter := NewRateLimiter(func() time.Time { return current })
	rule := RateLimitRule{Rate: 1, Burst: 1}

	if allowed, _ := limiter.Allow("a|g", rule); !allowed {
		t.Fatalf("expected first key allowed")
	}
	if allowed, _ := limiter.Allow("b|g", rule); !allowed {
		t.Fatalf("expected independent key allowed")
	}
}
