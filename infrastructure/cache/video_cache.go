package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"walkingtube/domain/model"
	"walkingtube/infrastructure/logger"
)

const (
	videoListKey = "videos:list"
	videoListTTL = 30 * time.Second
)

// IVideoCache caches the full ordered video list between store reads.
type IVideoCache interface {
	GetList(ctx context.Context) ([]model.Video, bool)
	SetList(ctx context.Context, videos []model.Video)
	Invalidate(ctx context.Context)
}

// VideoCache is a Redis-backed IVideoCache. A nil client disables it.
type VideoCache struct {
	client *redis.Client
}

func NewVideoCache(client *redis.Client) IVideoCache { return &VideoCache{client: client} }

func (c *VideoCache) GetList(ctx context.Context) ([]model.Video, bool) {
	if c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, videoListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.GetLogger().WithField("error", err).Warn("video list cache read failed")
		}
		return nil, false
	}
	var videos []model.Video
	if err := json.Unmarshal(raw, &videos); err != nil {
		logger.GetLogger().WithField("error", err).Warn("video list cache payload corrupt")
		return nil, false
	}
	return videos, true
}

func (c *VideoCache) SetList(ctx context.Context, videos []model.Video) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(videos)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, videoListKey, raw, videoListTTL).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("video list cache write failed")
	}
}

func (c *VideoCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, videoListKey).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("video list cache invalidate failed")
	}
}
