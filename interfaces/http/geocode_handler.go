package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"walkingtube/domain/dto"
	"walkingtube/infrastructure/cache"
	"walkingtube/infrastructure/clients/geocoding"
	"walkingtube/infrastructure/logger"
)

type IGeocodeHandler interface {
	Search(ctx *gin.Context)
}

type GeocodeHandler struct {
	geocoder     geocoding.IGeocoder
	geocodeCache *cache.GeocodeCache
}

func NewGeocodeHandler(geocoder geocoding.IGeocoder, geocodeCache *cache.GeocodeCache) IGeocodeHandler {
	return &GeocodeHandler{geocoder: geocoder, geocodeCache: geocodeCache}
}

// Search resolves a free-text place query. A blank query returns an empty
// result set without touching the upstream.
func (h *GeocodeHandler) Search(ctx *gin.Context) {
	q := strings.TrimSpace(ctx.Query("q"))
	if q == "" {
		ctx.JSON(http.StatusOK, gin.H{"results": []dto.GeocodeResult{}})
		return
	}

	if results, ok := h.geocodeCache.Get(ctx.Request.Context(), q); ok {
		ctx.JSON(http.StatusOK, gin.H{"results": results})
		return
	}

	results, err := h.geocoder.Forward(ctx.Request.Context(), q)
	if err != nil {
		logger.GetLogger().WithField("query", q).WithField("error", err).Error("Error while geocoding")
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "could not search places"})
		return
	}

	h.geocodeCache.Set(ctx.Request.Context(), q, results)
	ctx.JSON(http.StatusOK, gin.H{"results": results})
}
