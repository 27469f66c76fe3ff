package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"walkingtube/domain/dto"
	"walkingtube/infrastructure/logger"
)

const geocodeTTL = 10 * time.Minute

// GeocodeCache memoizes forward-geocoding lookups per normalized query.
// A nil client disables it.
type GeocodeCache struct {
	client *redis.Client
}

func NewGeocodeCache(client *redis.Client) *GeocodeCache { return &GeocodeCache{client: client} }

func (c *GeocodeCache) Get(ctx context.Context, query string) ([]dto.GeocodeResult, bool) {
	if c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, "geocode:"+query).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.GetLogger().WithField("error", err).Warn("geocode cache read failed")
		}
		return nil, false
	}
	var results []dto.GeocodeResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, false
	}
	return results, true
}

func (c *GeocodeCache) Set(ctx context.Context, query string, results []dto.GeocodeResult) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(results)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, "geocode:"+query, raw, geocodeTTL).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("geocode cache write failed")
	}
}
