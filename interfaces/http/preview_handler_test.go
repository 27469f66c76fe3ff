package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"walkingtube/infrastructure/clients/youtube"
	httpHandler "walkingtube/interfaces/http"
)

func setupPreviewRouter(oembedBase string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := httpHandler.NewPreviewHandler(youtube.NewOEmbedClientWithBase(oembedBase))
	router.GET("/youtube/preview", handler.Preview)
	return router
}

func TestPreviewHandler_Preview(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"Walk in Tokyo","thumbnail_url":"https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg","author_name":"Walker","author_url":"https://www.youtube.com/@walker"}`))
	}))
	defer srv.Close()

	router := setupPreviewRouter(srv.URL)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/youtube/preview?url=https%3A%2F%2Fyoutu.be%2FdQw4w9WgXcQ", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		VideoID   string `json:"videoId"`
		Available bool   `json:"available"`
		Metadata  *struct {
			Title string `json:"title"`
		} `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "dQw4w9WgXcQ", body.VideoID)
	assert.True(t, body.Available)
	require.NotNil(t, body.Metadata)
	assert.Equal(t, "Walk in Tokyo", body.Metadata.Title)
}

func TestPreviewHandler_Preview_UpstreamDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	router := setupPreviewRouter(srv.URL)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/youtube/preview?url=dQw4w9WgXcQ", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"available":false`)
}

func TestPreviewHandler_Preview_InvalidURL(t *testing.T) {
	router := setupPreviewRouter("http://127.0.0.1:0")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/youtube/preview?url=not+a+url", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
