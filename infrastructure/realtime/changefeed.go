package realtime

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"

	"walkingtube/domain/dto"
	"walkingtube/domain/feed"
	"walkingtube/domain/model"
	"walkingtube/infrastructure/cache"
	"walkingtube/infrastructure/logger"
)

const changeChannel = "videos:changes"

// Mirror is an optional extra sink for change events (message broker fan-out
// for external consumers). Implementations must tolerate being skipped.
type Mirror interface {
	Publish(ctx context.Context, payload []byte) error
}

// ChangeFeed publishes videos table change events. With Redis configured the
// events travel over a pub/sub channel so every instance sees writes from any
// instance; without it they are handed straight to the local listener.
type ChangeFeed struct {
	rdb     *redis.Client
	local   chan []byte
	mirrors []Mirror
}

func NewChangeFeed(rdb *redis.Client, mirrors ...Mirror) *ChangeFeed {
	return &ChangeFeed{
		rdb:     rdb,
		local:   make(chan []byte, 64),
		mirrors: mirrors,
	}
}

func (f *ChangeFeed) Publish(ctx context.Context, event dto.ChangeEvent) error {
	event.Table = "videos"
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	for _, m := range f.mirrors {
		if m == nil {
			continue
		}
		if err := m.Publish(ctx, payload); err != nil {
			logger.GetLogger().WithField("error", err).Warn("change event mirror publish failed")
		}
	}

	if f.rdb != nil {
		if err := f.rdb.Publish(ctx, changeChannel, payload).Err(); err != nil {
			logger.GetLogger().WithField("error", err).Error("change event publish failed")
			return err
		}
		return nil
	}

	select {
	case f.local <- payload:
	default:
		logger.GetLogger().Warn("local change feed full, dropping event")
	}
	return nil
}

// Listener consumes the change feed, reconciles events into a server-side
// snapshot of the video list, and fans them out to SSE clients.
type Listener struct {
	feed       *ChangeFeed
	hub        *Hub
	videoCache cache.IVideoCache

	mu    sync.RWMutex
	state feed.State
}

func NewListener(f *ChangeFeed, hub *Hub, videoCache cache.IVideoCache) *Listener {
	return &Listener{feed: f, hub: hub, videoCache: videoCache}
}

// Prime seeds the snapshot from an initial store read before Run starts.
func (l *Listener) Prime(videos []model.Video) {
	l.mu.Lock()
	l.state.Videos = append([]model.Video(nil), videos...)
	l.mu.Unlock()
}

// Snapshot returns the reconciled video list, most recent first.
func (l *Listener) Snapshot() []model.Video {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state.Snapshot()
}

// Run consumes events until ctx is done. The subscription is established
// once here and released once on return.
func (l *Listener) Run(ctx context.Context) error {
	if l.feed.rdb == nil {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case payload := <-l.feed.local:
				l.handle(payload)
			}
		}
	}

	sub := l.feed.rdb.Subscribe(ctx, changeChannel)
	defer sub.Close()
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			l.handle([]byte(msg.Payload))
		}
	}
}

func (l *Listener) handle(payload []byte) {
	var event dto.ChangeEvent
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&event); err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"error":   err,
			"payload": string(payload),
		}).Error("change event payload does not match schema")
		return
	}
	if event.Table != "videos" {
		return
	}

	l.mu.Lock()
	err := l.state.Apply(event)
	l.mu.Unlock()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("change event reconciliation failed")
		return
	}

	if l.videoCache != nil {
		l.videoCache.Invalidate(context.Background())
	}
	l.hub.Broadcast(event)
}
