package cache_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"walkingtube/domain/model"
	"walkingtube/infrastructure/cache"
)

// A nil Redis client must degrade to a pass-through cache, matching the
// optional wiring in main.
func TestVideoCache_NilClient(t *testing.T) {
	c := cache.NewVideoCache(nil)
	assert.NotNil(t, c)

	ctx := context.Background()
	_, ok := c.GetList(ctx)
	assert.False(t, ok)

	c.SetList(ctx, []model.Video{{ID: "v1"}})
	c.Invalidate(ctx)
	_, ok = c.GetList(ctx)
	assert.False(t, ok)
}

func TestGeocodeCache_NilClient(t *testing.T) {
	c := cache.NewGeocodeCache(nil)
	assert.NotNil(t, c)
	_, ok := c.Get(context.Background(), "seoul")
	assert.False(t, ok)
}
