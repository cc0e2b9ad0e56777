package application

import (
	"testing"
	"time"
)

func TestWarningCacheStoresEntries(t *testing.T) {
	fixed := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	current := fixed
	cache := newWarningCache(time.Minute, func() time.Time { return current })

	cache.set("trip-1/all/2", []string{"closed on Tuesday"})

	cached, ok := cache.get("trip-1/all/2")
	if !ok {
		t.Fatalf("expected cache hit")
	}
	if len(cached) != 1 || cached[0] != "closed on Tuesday" {
		t.Fatalf("unexpected cached warnings %#v", cached)
	}

	if _, ok := cache.get("trip-1/all/3"); ok {
		t.Fatalf("expected miss for a different item count key")
	}
}

func TestWarningCacheExpiresEntries(t *testing.T) {
	fixed := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	current := fixed
	cache := newWarningCache(time.Second, func() time.Time { return current })

	cache.set("key", []string{"warning"})
	if _, ok := cache.get("key"); !ok {
		t.Fatalf("expected cache hit before expiry")
	}

	current = current.Add(2 * time.Second)
	if _, ok := cache.get("key"); ok {
		t.Fatalf("expected cache entry to expire")
	}
}

func TestWarningCacheDisabledWithoutTTL(t *testing.T) {
	cache := newWarningCache(0, time.Now)
	cache.set("key", []string{"warning"})
	if _, ok := cache.get("key"); ok {
		t.Fatalf("expected zero-TTL cache to store nothing")
	}
}
