package ratelimit

import (
	"testing"
	"time"
)

func TestLimiterAllowsUpToLimit(t *testing.T) {
	l := NewLimiter(3, time.Minute)
	for i := 0; i < 3; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("request %d refused within quota", i+1)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Error("request over quota allowed")
	}
}

func TestLimiterKeysAreIndependent(t *testing.T) {
	l := NewLimiter(1, time.Minute)
	if !l.Allow("a") {
		t.Fatal("first request for key a refused")
	}
	if !l.Allow("b") {
		t.Error("key b must have its own window")
	}
	if l.Allow("a") {
		t.Error("key a over quota allowed")
	}
}

func TestLimiterWindowResets(t *testing.T) {
	current := time.Unix(1_700_000_000, 0)
	l := NewLimiter(1, time.Minute)
	l.now = func() time.Time { return current }

	if !l.Allow("ip") {
		t.Fatal("first request refused")
	}
	if l.Allow("ip") {
		t.Fatal("second request within window allowed")
	}

	current = current.Add(61 * time.Second)
	if !l.Allow("ip") {
		t.Error("request after window rollover refused")
	}
}

func TestLimiterRetryAfter(t *testing.T) {
	current := time.Unix(1_700_000_000, 0)
	l := NewLimiter(1, time.Minute)
	l.now = func() time.Time { return current }

	l.Allow("ip")
	current = current.Add(20 * time.Second)
	if got := l.RetryAfter("ip"); got != 40*time.Second {
		t.Errorf("RetryAfter = %v, want 40s", got)
	}
	if got := l.RetryAfter("unknown"); got != 0 {
		t.Errorf("RetryAfter for unknown key = %v, want 0", got)
	}
}

func TestLimiterSweep(t *testing.T) {
	current := time.Unix(1_700_000_000, 0)
	l := NewLimiter(1, time.Minute)
	l.now = func() time.Time { return current }

	l.Allow("stale")
	current = current.Add(2 * time.Minute)
	l.Allow("fresh")
	l.Sweep()

	l.mu.Lock()
	_, staleOK := l.buckets["stale"]
	_, freshOK := l.buckets["fresh"]
	l.mu.Unlock()
	if staleOK {
		t.Error("expired bucket survived sweep")
	}
	if !freshOK {
		t.Error("live bucket removed by sweep")
	}
}
