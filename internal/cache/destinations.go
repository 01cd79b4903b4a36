package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"camtourvisor/internal/metrics"
	"camtourvisor/internal/model"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "destinations:"

// DestinationCache хранит JSON-снимки направлений в Redis. Ошибки Redis
// только логируются: вызывающий код идет в базу данных.
type DestinationCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewDestinationCache создает кэш направлений.
func NewDestinationCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *DestinationCache {
	return &DestinationCache{client: client, ttl: ttl, log: log}
}

func listKey(category, search string) string {
	return keyPrefix + "list:" + strings.ToLower(category) + ":" + strings.ToLower(search)
}

func slugKey(slug string) string {
	return keyPrefix + "slug:" + slug
}

// GetList возвращает закэшированный список или false при промахе.
func (c *DestinationCache) GetList(ctx context.Context, category, search string) ([]model.Destination, bool) {
	var list []model.Destination
	ok := c.get(ctx, listKey(category, search), &list)
	return list, ok
}

// SetList кэширует список направлений.
func (c *DestinationCache) SetList(ctx context.Context, category, search string, list []model.Destination) {
	c.set(ctx, listKey(category, search), list)
}

// GetDestination возвращает закэшированное направление или false при промахе.
func (c *DestinationCache) GetDestination(ctx context.Context, slug string) (*model.Destination, bool) {
	var d model.Destination
	if !c.get(ctx, slugKey(slug), &d) {
		return nil, false
	}
	return &d, true
}

// SetDestination кэширует направление по slug.
func (c *DestinationCache) SetDestination(ctx context.Context, d *model.Destination) {
	c.set(ctx, slugKey(d.Slug), d)
}

// Invalidate удаляет все ключи направлений.
func (c *DestinationCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *DestinationCache) get(ctx context.Context, key string, dst interface{}) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.IncCacheLookup(false)
		return false
	}
	if err != nil {
		c.log.Warn("redis GET error", zap.String("key", key), zap.Error(err))
		metrics.IncCacheLookup(false)
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		c.log.Warn("corrupt cache entry", zap.String("key", key), zap.Error(err))
		metrics.IncCacheLookup(false)
		return false
	}
	metrics.IncCacheLookup(true)
	return true
}

func (c *DestinationCache) set(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		c.log.Warn("cache marshal error", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn("redis SET error", zap.String("key", key), zap.Error(err))
	}
}
