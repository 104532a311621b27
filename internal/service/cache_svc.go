package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs. Country metadata changes rarely; attraction documents carry
// rating aggregates and are invalidated on every rating write anyway.
const (
	CountryCacheTTL    = 30 * time.Minute
	AttractionCacheTTL = 5 * time.Minute
)

// CacheService provides a Redis cache-aside layer for catalogue lookups.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client and every
// cache operation becomes a no-op.
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks and the
// comment hub). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetCountries retrieves the cached country list. Returns nil when not
// cached or caching is disabled.
func (c *CacheService) GetCountries(ctx context.Context) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, countriesKey()).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetCountries stores the country list.
func (c *CacheService) SetCountries(ctx context.Context, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, countriesKey(), b, CountryCacheTTL).Err()
}

// GetAttraction retrieves a cached attraction document. Returns nil when not
// cached.
func (c *CacheService) GetAttraction(ctx context.Context, countryID, attractionID string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, attractionKey(countryID, attractionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetAttraction stores an attraction document.
func (c *CacheService) SetAttraction(ctx context.Context, countryID, attractionID string, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, attractionKey(countryID, attractionID), b, AttractionCacheTTL).Err()
}

// InvalidateAttraction removes an attraction from cache (called after a
// rating write changes its aggregates).
func (c *CacheService) InvalidateAttraction(ctx context.Context, countryID, attractionID string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, attractionKey(countryID, attractionID)).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func countriesKey() string {
	return "countries:all"
}

func attractionKey(countryID, attractionID string) string {
	return fmt.Sprintf("attraction:%s:%s", countryID, attractionID)
}
