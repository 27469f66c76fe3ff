// Package geocoding wraps the Mapbox forward geocoding API. Results are
// trimmed to what the map picker needs: a place label and a lng/lat center.
package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"
	"walkingtube/domain/dto"
	"walkingtube/infrastructure/logger"
)

type IGeocoder interface {
	Forward(ctx context.Context, q string) ([]dto.GeocodeResult, error)
}

type mapboxParams struct {
	AccessToken string `url:"access_token"`
	Language    string `url:"language,omitempty"`
	Limit       int    `url:"limit,omitempty"`
}

type mapboxFeature struct {
	ID        string     `json:"id"`
	PlaceName string     `json:"place_name"`
	Center    [2]float64 `json:"center"`
}

type mapboxResponse struct {
	Features []mapboxFeature `json:"features"`
}

type MapboxClient struct {
	baseURL     string
	accessToken string
	language    string
	limit       int
	httpClient  *http.Client
}

func NewMapboxClient(accessToken, language string, limit int) *MapboxClient {
	return &MapboxClient{
		baseURL:     "https://api.mapbox.com",
		accessToken: accessToken,
		language:    language,
		limit:       limit,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewMapboxClientWithBase is used by tests to point at a stub server.
func NewMapboxClientWithBase(baseURL, accessToken, language string, limit int) *MapboxClient {
	c := NewMapboxClient(accessToken, language, limit)
	c.baseURL = baseURL
	return c
}

// Forward resolves a free-text query to candidate places, best match first.
func (c *MapboxClient) Forward(ctx context.Context, q string) ([]dto.GeocodeResult, error) {
	params, err := query.Values(mapboxParams{
		AccessToken: c.accessToken,
		Language:    c.language,
		Limit:       c.limit,
	})
	if err != nil {
		return nil, fmt.Errorf("encode geocoding params: %w", err)
	}

	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?%s",
		c.baseURL, url.PathEscape(q), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build geocoding request: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		logger.GetLogger().WithField("status", res.StatusCode).Error("Geocoding upstream returned non-200")
		return nil, fmt.Errorf("geocoding upstream status %d", res.StatusCode)
	}

	var body mapboxResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode geocoding response: %w", err)
	}

	results := make([]dto.GeocodeResult, 0, len(body.Features))
	for _, f := range body.Features {
		results = append(results, dto.GeocodeResult{
			ID:        f.ID,
			PlaceName: f.PlaceName,
			Center:    f.Center,
		})
	}

	return results, nil
}
