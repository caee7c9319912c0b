package trivia

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	defaultCacheTTL   = 5 * time.Minute
	categoriesListKey = "trivia:categories"
)

// CategoryCache stores the full category list.
type CategoryCache interface {
	Get(ctx context.Context) ([]Category, bool, error)
	Set(ctx context.Context, categories []Category) error
	Invalidate(ctx context.Context) error
}

// RedisCategoryCache keeps the category list in Redis so listing endpoints
// skip a Postgres round trip.
type RedisCategoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ CategoryCache = (*RedisCategoryCache)(nil)

func NewRedisCategoryCache(client *redis.Client, ttl time.Duration) *RedisCategoryCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &RedisCategoryCache{client: client, ttl: ttl}
}

func (c *RedisCategoryCache) Get(ctx context.Context) ([]Category, bool, error) {
	data, err := c.client.Get(ctx, categoriesListKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var categories []Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, false, err
	}
	return categories, true, nil
}

func (c *RedisCategoryCache) Set(ctx context.Context, categories []Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, categoriesListKey, data, c.ttl).Err()
}

func (c *RedisCategoryCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, categoriesListKey).Err()
}

// CachedCategories is a read-through CategoryPersistence. Cache failures are
// logged and fall back to the backend; creates invalidate the cached list.
type CachedCategories struct {
	next   CategoryPersistence
	cache  CategoryCache
	logger zerolog.Logger
}

var _ CategoryPersistence = (*CachedCategories)(nil)

func NewCachedCategories(next CategoryPersistence, cache CategoryCache, logger zerolog.Logger) *CachedCategories {
	return &CachedCategories{
		next:   next,
		cache:  cache,
		logger: logger.With().Str("component", "category_cache").Logger(),
	}
}

func (c *CachedCategories) ListCategories(ctx context.Context) ([]Category, error) {
	cached, ok, err := c.cache.Get(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("category cache read failed")
	} else if ok {
		return cached, nil
	}

	categories, err := c.next.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.cache.Set(ctx, categories); err != nil {
		c.logger.Warn().Err(err).Msg("category cache write failed")
	}
	return categories, nil
}

func (c *CachedCategories) GetCategory(ctx context.Context, id int) (Category, error) {
	return c.next.GetCategory(ctx, id)
}

func (c *CachedCategories) InsertCategory(ctx context.Context, typ string) (Category, error) {
	category, err := c.next.InsertCategory(ctx, typ)
	if err != nil {
		return Category{}, err
	}
	if err := c.cache.Invalidate(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("category cache invalidation failed")
	}
	return category, nil
}
