package memcache

import (
	"fmt"
	"testing"
	"time"
)

func TestLookupCacheSetGet(t *testing.T) {
	c := NewLookupCache[int](0, 0)
	if _, ok := c.Get("missing"); ok {
		t.Error("Get on empty cache reported a hit")
	}
	c.Set("k", 42)
	v, ok := c.Get("k")
	if !ok || v != 42 {
		t.Errorf("Get = %d, %v; want 42, true", v, ok)
	}
}

func TestLookupCacheExpiry(t *testing.T) {
	c := NewLookupCache[string](10*time.Millisecond, 0)
	c.Set("k", "v")
	if _, ok := c.Get("k"); !ok {
		t.Fatal("fresh entry missing")
	}
	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Error("expired entry still served")
	}
}

func TestLookupCacheZeroTTLNeverExpires(t *testing.T) {
	c := NewLookupCache[string](0, 0)
	c.Set("k", "v")
	time.Sleep(5 * time.Millisecond)
	if _, ok := c.Get("k"); !ok {
		t.Error("zero-TTL entry expired")
	}
}

func TestLookupCacheCap(t *testing.T) {
	c := NewLookupCache[int](time.Hour, 5)
	for i := 0; i < 5; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
	}
	c.Set("overflow", 99)
	if got := c.Len(); got > 5+1 {
		t.Errorf("cache grew past cap: %d entries", got)
	}
	if v, ok := c.Get("overflow"); !ok || v != 99 {
		t.Error("latest write must survive the overflow reset")
	}
}
