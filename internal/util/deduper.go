package util

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Deduper guards MQ handlers against redelivered events using a Redis
// SetNX lock per handler and entity.
type Deduper struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewDeduper creates a deduper; logger may be nil.
func NewDeduper(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *Deduper {
	return &Deduper{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

// AcquireOnce tries to acquire a dedup lock for a given handler + entity ID.
// Returns true if this is the first time processing, false on a duplicate.
// When Redis is unavailable processing is allowed through rather than
// blocked, trading occasional duplicate work for availability.
func (d *Deduper) AcquireOnce(ctx context.Context, handler string, entityID int) bool {
	key := fmt.Sprintf("dedup:%s:%d", handler, entityID)

	ok, err := d.rdb.SetNX(ctx, key, 1, d.ttl).Result()
	if err != nil {
		if d.logger != nil {
			d.logger.Warn("Redis dedup check failed, allowing processing",
				zap.String("handler", handler),
				zap.Int("entity_id", entityID),
				zap.Error(err),
			)
		}
		return true
	}

	if !ok && d.logger != nil {
		d.logger.Info("Skipped duplicated event",
			zap.String("handler", handler),
			zap.Int("entity_id", entityID),
			zap.String("dedup_key", key),
		)
	}

	return ok
}
