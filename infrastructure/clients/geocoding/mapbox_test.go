package geocoding_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"walkingtube/infrastructure/clients/geocoding"
)

func TestMapboxClient_Forward(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocoding/v5/mapbox.places/Shibuya.json", r.URL.Path)
		assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))
		assert.Equal(t, "en", r.URL.Query().Get("language"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"features":[{"id":"place.1","place_name":"Shibuya, Tokyo, Japan","center":[139.7016,35.6580]}]}`))
	}))
	defer srv.Close()

	client := geocoding.NewMapboxClientWithBase(srv.URL, "test-token", "en", 5)
	results, err := client.Forward(context.Background(), "Shibuya")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Shibuya, Tokyo, Japan", results[0].PlaceName)
	assert.Equal(t, [2]float64{139.7016, 35.6580}, results[0].Center)
}

func TestMapboxClient_Forward_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := geocoding.NewMapboxClientWithBase(srv.URL, "bad-token", "en", 5)
	_, err := client.Forward(context.Background(), "Shibuya")
	assert.Error(t, err)
}
