package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/you/marketsvc/domain"
)

// setupTestRedis creates a miniredis instance and client for testing
func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, client
}

func TestViewCounterImpl_SequentialViews(t *testing.T) {
	_, client := setupTestRedis(t)
	counter := NewViewCounter(client, 60*time.Second)
	ctx := context.Background()

	for want := int64(1); want <= 5; want++ {
		got, err := counter.RecordView(ctx, 42)
		if err != nil {
			t.Fatalf("RecordView failed: %v", err)
		}
		if got != want {
			t.Errorf("expected count %d, got %d", want, got)
		}
	}
}

func TestViewCounterImpl_ExpiryResetsCount(t *testing.T) {
	mr, client := setupTestRedis(t)
	counter := NewViewCounter(client, 60*time.Second)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := counter.RecordView(ctx, 42); err != nil {
			t.Fatalf("RecordView failed: %v", err)
		}
	}

	mr.FastForward(61 * time.Second)

	got, err := counter.RecordView(ctx, 42)
	if err != nil {
		t.Fatalf("RecordView after expiry failed: %v", err)
	}
	if got != 1 {
		t.Errorf("expected count to restart at 1 after TTL, got %d", got)
	}
}

func TestViewCounterImpl_TTLSlidesOnEveryView(t *testing.T) {
	mr, client := setupTestRedis(t)
	counter := NewViewCounter(client, 60*time.Second)
	ctx := context.Background()

	if _, err := counter.RecordView(ctx, 42); err != nil {
		t.Fatalf("RecordView failed: %v", err)
	}

	// 45s + 45s is past the first write's window but each view refreshed it
	mr.FastForward(45 * time.Second)
	if _, err := counter.RecordView(ctx, 42); err != nil {
		t.Fatalf("RecordView failed: %v", err)
	}
	mr.FastForward(45 * time.Second)

	got, err := counter.RecordView(ctx, 42)
	if err != nil {
		t.Fatalf("RecordView failed: %v", err)
	}
	if got != 3 {
		t.Errorf("expected sliding window to keep the count (3), got %d", got)
	}
}

func TestViewCounterImpl_IndependentProducts(t *testing.T) {
	_, client := setupTestRedis(t)
	counter := NewViewCounter(client, 60*time.Second)
	ctx := context.Background()

	if _, err := counter.RecordView(ctx, 1); err != nil {
		t.Fatalf("RecordView failed: %v", err)
	}
	got, err := counter.RecordView(ctx, 2)
	if err != nil {
		t.Fatalf("RecordView failed: %v", err)
	}
	if got != 1 {
		t.Errorf("expected independent counter for product 2, got %d", got)
	}
}

func TestViewCounterImpl_CacheUnavailable(t *testing.T) {
	mr, client := setupTestRedis(t)
	counter := NewViewCounter(client, 60*time.Second)
	mr.Close()

	_, err := counter.RecordView(context.Background(), 42)
	if !errors.Is(err, domain.ErrCacheUnavailable) {
		t.Fatalf("expected ErrCacheUnavailable, got %v", err)
	}
}

func TestViewCounterImpl_ConcurrentViewsDoNotCorrupt(t *testing.T) {
	_, client := setupTestRedis(t)
	counter := NewViewCounter(client, 60*time.Second)
	ctx := context.Background()

	done := make(chan error, 10)
	for i := 0; i < 10; i++ {
		go func() {
			_, err := counter.RecordView(ctx, 42)
			done <- err
		}()
	}
	for i := 0; i < 10; i++ {
		if err := <-done; err != nil {
			t.Fatalf("concurrent RecordView failed: %v", err)
		}
	}

	// Lost updates are acceptable; the stored value must still be a sane count
	got, err := client.Get(ctx, "42_views").Int64()
	if err != nil {
		t.Fatalf("failed to read counter: %v", err)
	}
	if got < 1 || got > 10 {
		t.Errorf("expected count in [1,10], got %d", got)
	}
}
