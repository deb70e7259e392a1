package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/you/marketsvc/domain"
)

// ViewCounterImpl implements domain.ViewCounter using Redis. The counter is a
// soft analytics signal: reads and writes are not atomic together, so lost
// updates under concurrent views are accepted (last writer wins).
type ViewCounterImpl struct {
	client *redis.Client
	ttl    time.Duration
}

// NewViewCounter creates a new Redis-backed view counter
func NewViewCounter(client *redis.Client, ttl time.Duration) domain.ViewCounter {
	return &ViewCounterImpl{client: client, ttl: ttl}
}

// RecordView implements domain.ViewCounter. Each call reads the current count,
// increments it and writes it back with a fresh TTL, so the expiry window
// slides on every view. Cache failures surface as ErrCacheUnavailable and the
// caller treats them as "no increment performed".
func (s *ViewCounterImpl) RecordView(ctx context.Context, productID uint) (int64, error) {
	key := fmt.Sprintf("%d_views", productID)

	current, err := s.client.Get(ctx, key).Int64()
	if err == redis.Nil {
		current = 0
	} else if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}

	current++
	if err := s.client.Set(ctx, key, current, s.ttl).Err(); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrCacheUnavailable, err)
	}

	return current, nil
}
