package realtime

import (
	"encoding/json"
	"sync"

	"github.com/gin-gonic/gin"

	"walkingtube/domain/dto"
	"walkingtube/domain/model"
)

// Hub fans change-feed events out to every connected map client over SSE.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan dto.ChangeEvent]struct{}
}

func NewVideoHub() *Hub {
	return &Hub{subs: make(map[chan dto.ChangeEvent]struct{})}
}

// Serve streams the change feed to one client. The snapshot callback
// supplies the current video list, sent as the first event so the client
// starts from a consistent state.
func (h *Hub) Serve(c *gin.Context, snapshot func() []model.Video) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // disable nginx buffering

	ch := make(chan dto.ChangeEvent, 16)
	h.addSubscriber(ch)
	defer h.removeSubscriber(ch)

	if snapshot != nil {
		rows := make([]dto.VideoRow, 0)
		for _, v := range snapshot() {
			rows = append(rows, dto.NewVideoRow(v))
		}
		writeEvent(c, "snapshot", rows)
	} else {
		// Keep the connection open for proxies even without a snapshot.
		_, _ = c.Writer.Write([]byte(":ok\n\n"))
		c.Writer.Flush()
	}

	for {
		select {
		case evt := <-ch:
			writeEvent(c, "video_change", evt)
		case <-c.Request.Context().Done():
			return
		}
	}
}

func writeEvent(c *gin.Context, name string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	_, _ = c.Writer.Write([]byte("event: " + name + "\n"))
	_, _ = c.Writer.Write([]byte("data: "))
	_, _ = c.Writer.Write(data)
	_, _ = c.Writer.Write([]byte("\n\n"))
	c.Writer.Flush()
}

func (h *Hub) addSubscriber(ch chan dto.ChangeEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs[ch] = struct{}{}
}

func (h *Hub) removeSubscriber(ch chan dto.ChangeEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs, ch)
	close(ch)
}

// Broadcast delivers an event to every subscriber without blocking; a slow
// client misses events rather than stalling the feed.
func (h *Hub) Broadcast(evt dto.ChangeEvent) {
	h.mu.RLock()
	for ch := range h.subs {
		select {
		case ch <- evt:
		default:
		}
	}
	h.mu.RUnlock()
}
