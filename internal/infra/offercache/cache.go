// Package offercache keeps offer summaries in Redis between requests.
package offercache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"pro-stock-editor/internal/domain/offer"
	"pro-stock-editor/internal/pkg/errs"
	"pro-stock-editor/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "pro-stock-editor:offer"

// Cache reads offers through Redis. With a nil client every call goes to
// the source. Redis failures are logged and the source is used instead.
type Cache struct {
	source shared.OfferSource
	rdb    redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

func New(source shared.OfferSource, rdb redis.Cmdable, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{
		source: source,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

// entries are per operator: what an offer exposes depends on who asks
func key(ctx context.Context, offerID int64) string {
	op, _ := shared.OperatorFrom(ctx)
	return fmt.Sprintf("%s:%s:%d", keyPrefix, op.UserID, offerID)
}

func (c *Cache) Get(ctx context.Context, offerID int64) (*offer.Summary, error) {
	if c.rdb == nil {
		return c.source.GetOffer(ctx, offerID)
	}

	k := key(ctx, offerID)
	raw, err := c.rdb.Get(ctx, k).Bytes()
	switch {
	case err == nil:
		var summary offer.Summary
		if err := json.Unmarshal(raw, &summary); err == nil {
			return &summary, nil
		}
		c.logger.Warn("dropping undecodable offer cache entry", slog.String("key", k))
	case !errs.Is(err, redis.Nil):
		c.logger.Warn("offer cache read failed", slog.String("key", k), slog.Any("error", err))
	}

	return c.load(ctx, k, offerID)
}

func (c *Cache) Refresh(ctx context.Context, offerID int64) (*offer.Summary, error) {
	if c.rdb == nil {
		return c.source.GetOffer(ctx, offerID)
	}

	k := key(ctx, offerID)
	if err := c.rdb.Del(ctx, k).Err(); err != nil {
		c.logger.Warn("offer cache invalidation failed", slog.String("key", k), slog.Any("error", err))
	}
	return c.load(ctx, k, offerID)
}

func (c *Cache) load(ctx context.Context, k string, offerID int64) (*offer.Summary, error) {
	summary, err := c.source.GetOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		return summary, nil
	}
	if err := c.rdb.SetEx(ctx, k, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("offer cache write failed", slog.String("key", k), slog.Any("error", err))
	}
	return summary, nil
}

var _ shared.OfferSummaries = (*Cache)(nil)
