package youtube

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"walkingtube/domain/dto"
	"walkingtube/infrastructure/logger"
)

// OEmbedClient fetches video metadata from the public oEmbed endpoint. It
// needs no API key.
type OEmbedClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewOEmbedClient() *OEmbedClient {
	return &OEmbedClient{
		baseURL:    "https://www.youtube.com",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewOEmbedClientWithBase is used by tests to point at a stub server.
func NewOEmbedClientWithBase(baseURL string) *OEmbedClient {
	c := NewOEmbedClient()
	c.baseURL = baseURL
	return c
}

// Preview returns oEmbed metadata for a video id. Any upstream failure means
// "could not preview" and yields (nil, nil); it is never a validation error.
func (c *OEmbedClient) Preview(ctx context.Context, videoID string) (*dto.YouTubePreview, error) {
	endpoint := c.baseURL + "/oembed?url=" + url.QueryEscape("https://www.youtube.com/watch?v="+videoID) + "&format=json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"error":    err,
			"video_id": videoID,
		}).Warn("oEmbed request failed")
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var preview dto.YouTubePreview
	if err := json.NewDecoder(resp.Body).Decode(&preview); err != nil {
		logger.GetLogger().WithField("error", err).Warn("oEmbed response decode failed")
		return nil, nil
	}
	return &preview, nil
}
